package user

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/uyznfoundation/portal/core"
)

var (
	roleTag  = "role"
	roleText = "select a valid role"
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(roleTag, roleValidation)
	core.RegisterCustomTranslation(validate, translator, roleTag, roleText)
}

// roleValidation checks that the provided role is a known directory partition.
func roleValidation(fl validator.FieldLevel) bool {
	return ValidRole(fl.Field().String())
}
