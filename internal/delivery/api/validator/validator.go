// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"encoding/json"
	"reflect"
	"strings"

	"proximity/internal/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// ValidationError maps request field names to translated messages.
type ValidationError map[string]string

// Error implements the error interface.
func (ve ValidationError) Error() string {
	if len(ve) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(map[string]string(ve))
	if err != nil {
		return "validation error"
	}

	return string(b)
}

// EchoValidator implements echo.Validator.
type EchoValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New builds a validator with English messages. Field names follow the json, param or query tag.
func New() *EchoValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	translator, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}

	return &EchoValidator{
		validate:   validate,
		translator: translator,
	}
}

// Validate returns a ValidationError when i breaks a rule.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return errors.WithStack(err)
	}

	result := make(ValidationError, len(validateErrs))
	for _, fe := range validateErrs {
		result[fe.Field()] = fe.Translate(v.translator)
	}

	return result
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "param", "query"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return field.Name
}
