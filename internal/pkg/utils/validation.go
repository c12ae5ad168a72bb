package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorInstance *validator.Validate
	onceValidator     sync.Once
)

// Validator returns the process-wide validator instance.
func Validator() *validator.Validate {
	onceValidator.Do(func() {
		validatorInstance = validator.New()
	})
	return validatorInstance
}

func ValidateStruct(s interface{}) error {
	return Validator().Struct(s)
}
