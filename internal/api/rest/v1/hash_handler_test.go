//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHashHandler_Register_JSON(t *testing.T) {
	mockHashService := new(MockHashService)
	handler := NewHashHandler(mockHashService)

	mockHashService.On("Register", mock.Anything, "ana", "hunter2").Return(nil)

	c, w := newJSONContext(t, "/sec/hash", `{"message": "hunter2", "username": "ana"}`)
	handler.Register(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"answer": "OK"}`, w.Body.String())
	mockHashService.AssertExpectations(t)
}

func TestHashHandler_Register_Form(t *testing.T) {
	mockHashService := new(MockHashService)
	handler := NewHashHandler(mockHashService)

	mockHashService.On("Register", mock.Anything, "ana", "hunter2").Return(nil)

	c, w := newFormContext(t, "/sec/hash", url.Values{"message": {"hunter2"}, "username": {"ana"}})
	handler.Register(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockHashService.AssertExpectations(t)
}

func TestHashHandler_Register_MissingUsername(t *testing.T) {
	mockHashService := new(MockHashService)
	handler := NewHashHandler(mockHashService)

	c, w := newJSONContext(t, "/sec/hash", `{"message": "hunter2"}`)
	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username")
	mockHashService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestHashHandler_Validate(t *testing.T) {
	tests := []struct {
		name           string
		valid          bool
		acceptLanguage string
		expectedAnswer string
	}{
		{"ValidDefaultSpanish", true, "", "Válido"},
		{"InvalidDefaultSpanish", false, "", "No válido"},
		{"ValidEnglish", true, "en-US,en;q=0.9", "Valid"},
		{"InvalidEnglish", false, "en", "Invalid"},
		{"UnsupportedFallsBackToSpanish", true, "de-DE", "Válido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockHashService := new(MockHashService)
			handler := NewHashHandler(mockHashService)
			mockHashService.On("Validate", mock.Anything, "ana", "hunter2").Return(tt.valid, nil)

			c, w := newJSONContext(t, "/sec/hash/validate", `{"message": "hunter2", "username": "ana"}`)
			if tt.acceptLanguage != "" {
				c.Request.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			handler.Validate(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"answer": %q}`, tt.expectedAnswer), w.Body.String())
		})
	}
}

func TestHashHandler_Validate_UnknownUser(t *testing.T) {
	mockHashService := new(MockHashService)
	handler := NewHashHandler(mockHashService)

	mockHashService.On("Validate", mock.Anything, "ghost", "m").
		Return(false, fmt.Errorf("%w: user ghost", apperrors.ErrNotFound))

	c, w := newJSONContext(t, "/sec/hash/validate", `{"message": "m", "username": "ghost"}`)
	handler.Validate(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ghost")
}
