package crypto

import (
	"context"
)

// EncryptorDecryptor seals values that travel through cookies.
type EncryptorDecryptor interface {
	Encrypt(ctx context.Context, plain string) (string, error)
	Decrypt(ctx context.Context, encrypted string) (string, error)
}
