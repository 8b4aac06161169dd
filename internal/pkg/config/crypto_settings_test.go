//go:build unit
// +build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCryptoSettingsValidation(t *testing.T) {
	valid := DefaultCryptoSettings()

	tests := []struct {
		name          string
		mutate        func(s *CryptoSettings)
		expectedError bool
	}{
		{"defaults", func(s *CryptoSettings) {}, false},
		{"legacy salt mode", func(s *CryptoSettings) { s.SaltMode = "legacy" }, false},
		{"rsa 4096", func(s *CryptoSettings) { s.RSAKeySize = 4096 }, false},
		{"rsa 1024 rejected", func(s *CryptoSettings) { s.RSAKeySize = 1024 }, true},
		{"unknown salt mode", func(s *CryptoSettings) { s.SaltMode = "zero" }, true},
		{"no workers", func(s *CryptoSettings) { s.KeyGenWorkers = 0 }, true},
		{"zero keygen timeout", func(s *CryptoSettings) { s.KeyGenTimeout = 0 }, true},
		{"negative store timeout", func(s *CryptoSettings) { s.StoreTimeout = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := valid
			tt.mutate(&settings)

			err := settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
