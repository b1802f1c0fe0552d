package app

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/edusupport/edusupport/pkg/jwtx"
)

// loadOrGenerateSigningKey reads the HMAC signing key from path, generating
// and persisting a fresh one on first run. The file holds the key
// base64-encoded so it survives editors that mangle raw bytes.
func loadOrGenerateSigningKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		key, decErr := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if decErr != nil {
			return nil, fmt.Errorf("signing key file %s is not valid base64: %w", path, decErr)
		}
		if len(key) < jwtx.MinKeyBytes {
			return nil, fmt.Errorf("signing key in %s is too short: %d bytes", path, len(key))
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	key := make([]byte, jwtx.MinKeyBytes)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}

	encoded := base64.StdEncoding.EncodeToString(key)
	if err := os.WriteFile(path, []byte(encoded+"\n"), 0o600); err != nil {
		return nil, fmt.Errorf("failed to persist signing key to %s: %w", path, err)
	}

	return key, nil
}
