//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestNewAnswerCatalog(t *testing.T) {
	c, err := newAnswerCatalog()
	require.NoError(t, err)

	tests := []struct {
		tag      language.Tag
		key      string
		expected string
	}{
		{language.Spanish, answerValid, "Válido"},
		{language.Spanish, answerInvalid, "No válido"},
		{language.Spanish, answerSec, "Éxito x2"},
		{language.English, answerValid, "Valid"},
		{language.English, answerInvalid, "Invalid"},
		{language.English, answerRoot, "Success!"},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String()+"/"+tt.key, func(t *testing.T) {
			printer := message.NewPrinter(tt.tag, message.Catalog(c))
			assert.Equal(t, tt.expected, printer.Sprintf(tt.key))
		})
	}
}
