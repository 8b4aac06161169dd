package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding configuration keys,
// e.g. CRYPTO_SEC_DATABASE_DSN overrides database.dsn.
const EnvPrefix = "CRYPTO_SEC"

// CORSSettings holds the origins allowed by the CORS middleware
type CORSSettings struct {
	AllowOrigins []string `mapstructure:"allow_origins" validate:"required,min=1"`
}

// RestConfig is the configuration of the REST service
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	Crypto   CryptoSettings   `mapstructure:"crypto"`
	CORS     CORSSettings     `mapstructure:"cors"`
}

// Validate checks every section of the configuration
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for port: %w", err)
	}
	if err := validate.Struct(c.CORS); err != nil {
		return fmt.Errorf("validation failed for CORSSettings: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Crypto.Validate()
}

// InitializeRestConfig loads the YAML file at path, applies defaults and environment overrides
// and validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	crypto := DefaultCryptoSettings()
	logger := DefaultLoggerSettings()

	v.SetDefault("port", "3501")
	v.SetDefault("logger.log_level", logger.LogLevel)
	v.SetDefault("logger.log_type", logger.LogType)
	v.SetDefault("logger.file_path", logger.FilePath)
	v.SetDefault("logger.max_size", logger.MaxSize)
	v.SetDefault("logger.max_backups", logger.MaxBackups)
	v.SetDefault("logger.max_age", logger.MaxAge)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", ":memory:")
	v.SetDefault("database.name", "")
	v.SetDefault("crypto.rsa_key_size", crypto.RSAKeySize)
	v.SetDefault("crypto.salt_mode", crypto.SaltMode)
	v.SetDefault("crypto.keygen_workers", crypto.KeyGenWorkers)
	v.SetDefault("crypto.keygen_timeout", crypto.KeyGenTimeout)
	v.SetDefault("crypto.store_timeout", crypto.StoreTimeout)
	v.SetDefault("cors.allow_origins", []string{"*"})
}
