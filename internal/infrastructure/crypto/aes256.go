package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"

	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

const keyInfo = "clickpay-web session cookie"

var (
	ErrEmptySecret     = errors.New("secret must not be empty")
	ErrMalformedSealed = errors.New("sealed value is malformed")
)

type AES256 struct {
	cipher cipher.AEAD
	log    *logger.Logger
}

// NewAES256 derives a 32-byte key from the secret, so any secret length works.
func NewAES256(secret string, log *logger.Logger) (*AES256, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := make([]byte, 32)
	_, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key)
	if err != nil {
		return nil, log.Wrap(err, "derive key")
	}

	aesblock, err := aes.NewCipher(key)
	if err != nil {
		return nil, log.Wrap(err, "prepare aesblock")
	}

	aesgcm, err := cipher.NewGCM(aesblock)
	if err != nil {
		return nil, log.Wrap(err, "prepare aesgcm")
	}

	return &AES256{
		cipher: aesgcm,
		log:    log,
	}, nil
}

func (ae *AES256) Encrypt(ctx context.Context, plain string) (string, error) {
	// Generate random bytes for the nonce
	nonce := make([]byte, ae.cipher.NonceSize())
	_, err := rand.Read(nonce)
	if err != nil {
		return "", ae.log.Wrap(err, "prepare nonce bytes")
	}

	// Note the nonce in the beginning - we will use it during decryption
	sealed := ae.cipher.Seal(nonce, nonce, []byte(plain), nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (ae *AES256) Decrypt(ctx context.Context, encrypted string) (string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(encrypted)
	if err != nil {
		return "", ae.log.Wrap(err, "decode sealed value")
	}
	if len(decoded) < ae.cipher.NonceSize() {
		return "", ErrMalformedSealed
	}

	// Cut off nonce bytes
	nonce, sealed := decoded[:ae.cipher.NonceSize()], decoded[ae.cipher.NonceSize():]

	// Decrypt and verify signature
	plain, err := ae.cipher.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ae.log.Wrap(err, "open sealed value")
	}

	return string(plain), nil
}
