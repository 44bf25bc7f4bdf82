package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/quickdeliver/backend/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// report fields by their json names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// checkStruct runs tag validation and maps the first failure onto the
// domain error taxonomy.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return domain.ErrMissingField(fe.Field())
		}
		return domain.ErrInvalidField(fe.Field(), "failed "+fe.Tag()+" validation")
	}
	return domain.ErrInvalidField("body", "invalid payload")
}
