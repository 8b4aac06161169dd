// Package codec moves binary cryptographic material across the text wire protocol:
// standard base64 for single values and a four field text form for ECIES envelopes.
package codec

import (
	"encoding/base64"
	"fmt"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
)

// Encode renders data as standard padded base64.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode parses standard base64. field names the input in the returned validation error.
func Decode(field, text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not valid base64: %v", apperrors.ErrValidation, field, err)
	}
	return data, nil
}

// EncodeEnvelope renders every envelope field as base64.
func EncodeEnvelope(envelope *cryptoalg.Envelope) cryptoalg.EncodedEnvelope {
	return cryptoalg.EncodedEnvelope{
		CipherText:     Encode(envelope.CipherText),
		IV:             Encode(envelope.IV),
		MAC:            Encode(envelope.MAC),
		EphemPublicKey: Encode(envelope.EphemPublicKey),
	}
}

// DecodeEnvelope parses the four base64 fields of an envelope. Every field is required.
func DecodeEnvelope(encoded cryptoalg.EncodedEnvelope) (*cryptoalg.Envelope, error) {
	envelope := &cryptoalg.Envelope{}
	fields := []struct {
		name string
		text string
		dst  *[]byte
	}{
		{"cipherText", encoded.CipherText, &envelope.CipherText},
		{"iv", encoded.IV, &envelope.IV},
		{"mac", encoded.MAC, &envelope.MAC},
		{"ephemPublicKey", encoded.EphemPublicKey, &envelope.EphemPublicKey},
	}

	for _, f := range fields {
		if f.text == "" {
			return nil, fmt.Errorf("%w: encryptInfo.%s is required", apperrors.ErrValidation, f.name)
		}
		data, err := Decode("encryptInfo."+f.name, f.text)
		if err != nil {
			return nil, err
		}
		*f.dst = data
	}

	return envelope, nil
}
