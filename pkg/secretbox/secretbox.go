// Package secretbox шифрует полезную нагрузку алертов симметричным ключом (NaCl secretbox).
// Формат шифротекста: base64(nonce || box), совместимый с PyNaCl SecretBox.
package secretbox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	KeySize   = 32
	NonceSize = 24
)

var (
	ErrInvalidKey = errors.New("secretbox: key must be 32 bytes")
	ErrDecrypt    = errors.New("secretbox: decryption failed")
)

// Sealer шифрует и расшифровывает данные одним ключом. Безопасен для конкурентного использования.
type Sealer struct {
	key  [KeySize]byte
	rand io.Reader
}

// NewSealer создает Sealer с указанным ключом
func NewSealer(key []byte) (*Sealer, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}
	s := &Sealer{rand: rand.Reader}
	copy(s.key[:], key)
	return s, nil
}

// GenerateKey возвращает случайный ключ
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("secretbox: failed to generate key: %w", err)
	}
	return key, nil
}

// Seal шифрует plaintext со случайным nonce
func (s *Sealer) Seal(plaintext []byte) (string, error) {
	var nonce [NonceSize]byte
	if _, err := io.ReadFull(s.rand, nonce[:]); err != nil {
		return "", fmt.Errorf("secretbox: failed to read nonce: %w", err)
	}
	out := secretbox.Seal(nonce[:], plaintext, &nonce, &s.key)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Open расшифровывает результат Seal
func (s *Sealer) Open(encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	if len(raw) < NonceSize+secretbox.Overhead {
		return nil, fmt.Errorf("%w: message too short", ErrDecrypt)
	}

	var nonce [NonceSize]byte
	copy(nonce[:], raw[:NonceSize])
	plaintext, ok := secretbox.Open(nil, raw[NonceSize:], &nonce, &s.key)
	if !ok {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}
