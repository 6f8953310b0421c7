package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct runs struct-tag validation; used to fail fast on malformed
// configuration at startup.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
