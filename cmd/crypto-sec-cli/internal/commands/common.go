package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Criscape/security-crypto-lab/internal/app"
	"github.com/Criscape/security-crypto-lab/internal/pkg/config"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Results go to stdout, so the logger only reports failures.
func setupLogger() (logger.Logger, error) {
	settings := config.DefaultLoggerSettings()
	settings.LogLevel = config.LogLevelError

	if err := logger.InitLogger(&settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func setupCryptoServices(log logger.Logger) (*app.CryptoServices, error) {
	settings := config.DefaultCryptoSettings()
	return app.NewCryptoServices(&settings, log)
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// InitCommands registers every command group on rootCmd with a shared set of services.
func InitCommands(rootCmd *cobra.Command) error {
	log, err := setupLogger()
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	services, err := setupCryptoServices(log)
	if err != nil {
		return fmt.Errorf("failed to create crypto services: %w", err)
	}

	rootCmd.AddCommand(
		NewHashCommandHandler(services, log).Command(),
		NewAESCommandHandler(services, log).Command(),
		NewRSACommandHandler(services, log).Command(),
		NewECIESCommandHandler(services, log).Command(),
		NewSignCommandHandler(services, log).Command(),
	)
	return nil
}
