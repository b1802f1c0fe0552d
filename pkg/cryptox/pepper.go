package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	pepperOnce sync.Once
	pepper     string
	pepperFile string
)

// SetPepperPath sets the file the pepper is loaded from (or generated into).
// Must be called before the first hash or verify.
func SetPepperPath(file string) {
	pepperFile = file
}

// GetPepper returns the process-wide pepper, loading or generating it on
// first use. A missing or unreadable pepper is fatal: hashing without it
// would silently produce hashes that never verify.
func GetPepper() string {
	pepperOnce.Do(func() {
		p, err := loadOrGeneratePepper()
		if err != nil {
			slog.Error("failed to load or generate pepper", slog.Any("err", err))
			os.Exit(1)
		}
		pepper = p
	})
	return pepper
}

func loadOrGeneratePepper() (string, error) {
	pepperFile = filepath.Clean(pepperFile)
	if err := os.MkdirAll(filepath.Dir(pepperFile), 0750); err != nil {
		return "", err
	}

	data, err := os.ReadFile(pepperFile)
	if err == nil {
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}

	raw := make([]byte, keyLength)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	generated := base64.RawURLEncoding.EncodeToString(raw)

	if err := os.WriteFile(pepperFile, []byte(generated), 0600); err != nil {
		return "", err
	}
	return generated, nil
}
