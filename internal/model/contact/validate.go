package contact

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError names one violated constraint.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation in field order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid contact submission"
	}
	return e.Fields[0].Message
}

// FieldMap indexes the violations by JSON field name.
func (e *ValidationError) FieldMap() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

var fieldMessages = map[string]string{
	"fullname": "Le nom complet doit contenir au moins 3 caractères.",
	"email":    "Adresse e-mail invalide.",
	"subject":  "L'objet doit contenir au moins 3 caractères.",
	"message":  "Le message doit contenir au moins 10 caractères.",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks s against the form schema. It returns a *ValidationError
// when at least one constraint is violated.
func Validate(s Submission) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fe.Field() + " is invalid (" + fe.Tag() + ")"
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
