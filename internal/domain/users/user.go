package users

import (
	"github.com/Criscape/security-crypto-lab/internal/pkg/validators"
)

// UserRecord entity. Name is the unique key; Salt and Hash are the output of the hashing operation.
type UserRecord struct {
	Name string `validate:"required,min=1,max=255"`
	Salt string `validate:"required,max=255"`
	Hash string `validate:"required,base64"`
}

// Validate for validating UserRecord struct
func (u *UserRecord) Validate() error {
	return validators.ValidateStruct(u)
}
