package jwtx

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

var ErrNotEd25519 = errors.New("jwtx: key is not ed25519")

// ParseEd25519PublicKeyPEM decodes a PKIX "PUBLIC KEY" PEM block into an
// Ed25519 public key.
func ParseEd25519PublicKeyPEM(data []byte) (ed25519.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("jwtx: no PEM block found")
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse public key: %w", err)
	}

	pub, ok := key.(ed25519.PublicKey)
	if !ok {
		return nil, ErrNotEd25519
	}
	return pub, nil
}

// LoadEd25519PublicKey reads and parses a PEM-encoded public key file.
func LoadEd25519PublicKey(path string) (ed25519.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jwtx: read key file: %w", err)
	}
	return ParseEd25519PublicKeyPEM(data)
}

// MarshalEd25519PublicKeyPEM renders a public key as PKIX PEM. Used by the
// e2e harness to hand a generated key to the service under test.
func MarshalEd25519PublicKeyPEM(pub ed25519.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("jwtx: marshal public key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), nil
}
