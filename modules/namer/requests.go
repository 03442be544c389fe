package namer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/ideabloom/handler"
	"github.com/dmitrymomot/ideabloom/pkg/namegen"
)

// MaxFieldLength is the rune limit for each free-text input.
const MaxFieldLength = 200

// GenerateRequest is bound from DataStar signals, a JSON body, a form or the
// query string.
type GenerateRequest struct {
	Industry   string `json:"industry" form:"industry" query:"industry" validate:"max=200"`
	Theme      string `json:"theme" form:"theme" query:"theme" validate:"max=200"`
	Attributes string `json:"attributes" form:"attributes" query:"attributes" validate:"max=200"`
	Style      string `json:"style" form:"style" query:"style" validate:"omitempty,namestyle"`
}

// toNamegen converts a validated request.
func (r GenerateRequest) toNamegen() namegen.Request {
	style, _ := namegen.ParseStyle(r.Style)
	return namegen.Request{
		Industry:   r.Industry,
		Theme:      r.Theme,
		Attributes: r.Attributes,
		Style:      style,
	}
}

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("namestyle", func(fl validator.FieldLevel) bool {
		_, err := namegen.ParseStyle(fl.Field().String())
		return err == nil
	})

	return v
})

// validateRequest returns a handler.ValidationError keyed by JSON field name.
func validateRequest(req GenerateRequest) error {
	err := validate().Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := handler.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), fieldMessage(fe))
	}
	return verr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "namestyle":
		names := make([]string, 0, len(namegen.Styles()))
		for _, s := range namegen.Styles() {
			names = append(names, s.String())
		}
		return "must be one of: " + strings.Join(names, ", ")
	default:
		return "is invalid"
	}
}
