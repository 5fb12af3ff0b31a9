package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/workfree/pocket-lawyer/internal/utils"
)

var validate = newValidator()

// newValidator builds the shared validator, reporting fields by their JSON
// names so the error detail matches what the client sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeBody parses and validates the JSON body into dst. A non-nil return
// means the request is invalid and lists the field-level failures; the store
// must not be called in that case.
func decodeBody[T any](c *fiber.Ctx, dst *T) []utils.FieldError {
	if err := c.BodyParser(dst); err != nil {
		return []utils.FieldError{{
			Field:   "body",
			Rule:    "json",
			Message: "request body must be valid JSON",
		}}
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			out := make([]utils.FieldError, 0, len(verrs))
			for _, fe := range verrs {
				out = append(out, utils.FieldError{
					Field:   fe.Field(),
					Rule:    fe.Tag(),
					Message: validationMessage(fe),
				})
			}
			return out
		}
		return []utils.FieldError{{Field: "body", Rule: "invalid", Message: "request body is invalid"}}
	}

	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}

// parseID extracts the :id path parameter.
func parseID(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}
