// Package validation wires go-playground/validator with english translations
// so handlers can log readable field errors while keeping wire responses
// generic.
package validation

import (
	"errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator validates payload structs against their validate tags.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New creates a Validator with english error message translations.
func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)

	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, errors.New("failed to get en translator")
	}

	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Validator{
		validate: validate,
		trans:    trans,
	}, nil
}

// Struct validates s and returns one translated message per failing field.
// A nil result means s is valid.
func (v *Validator) Struct(s any) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, fieldErr := range verrs {
		messages = append(messages, fieldErr.Translate(v.trans))
	}

	return messages
}
