// Package testing holds helpers shared by the unit and integration tests.
package testing

import (
	"testing"

	"github.com/Criscape/security-crypto-lab/internal/pkg/config"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := config.DefaultLoggerSettings()
	err := logger.InitLogger(&settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// FlipByte returns a copy of data with the bits of the byte at index inverted.
func FlipByte(data []byte, index int) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	out[index] ^= 0xff
	return out
}
