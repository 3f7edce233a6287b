package crypto

import (
	"context"
)

type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Encrypt(ctx context.Context, plain string) (string, error) {
	// Return as plaintext
	return plain, nil
}

func (m *Mock) Decrypt(ctx context.Context, encrypted string) (string, error) {
	return encrypted, nil
}
