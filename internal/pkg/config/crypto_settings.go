package config

import (
	"fmt"
	"time"

	"github.com/Criscape/security-crypto-lab/internal/pkg/validators"
)

// Default crypto settings
const (
	DefaultRSAKeySize    = 2048
	DefaultSaltMode      = "random"
	DefaultKeyGenWorkers = 4
	DefaultKeyGenTimeout = 10 * time.Second
	DefaultStoreTimeout  = 5 * time.Second
)

// CryptoSettings holds the key and parameter generation policy
type CryptoSettings struct {
	RSAKeySize    uint32        `mapstructure:"rsa_key_size" validate:"rsakeysize"`
	SaltMode      string        `mapstructure:"salt_mode" validate:"required,oneof=random legacy"`
	KeyGenWorkers int           `mapstructure:"keygen_workers" validate:"min=1,max=64"`
	KeyGenTimeout time.Duration `mapstructure:"keygen_timeout" validate:"gt=0"`
	StoreTimeout  time.Duration `mapstructure:"store_timeout" validate:"gt=0"`
}

// DefaultCryptoSettings returns the settings used when the configuration file omits the crypto section
func DefaultCryptoSettings() CryptoSettings {
	return CryptoSettings{
		RSAKeySize:    DefaultRSAKeySize,
		SaltMode:      DefaultSaltMode,
		KeyGenWorkers: DefaultKeyGenWorkers,
		KeyGenTimeout: DefaultKeyGenTimeout,
		StoreTimeout:  DefaultStoreTimeout,
	}
}

// Validate checks that all fields in CryptoSettings are valid
func (s *CryptoSettings) Validate() error {
	if err := validators.ValidateStruct(s); err != nil {
		return fmt.Errorf("validation failed for CryptoSettings: %w", err)
	}
	return nil
}
