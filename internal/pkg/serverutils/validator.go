package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a request DTO and converts
// failures into a single 400 AppError naming the offending fields.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid []string
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			invalid = append(invalid, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return NewBadRequestError("invalid request: " + strings.Join(invalid, ", "))
	}
	return NewBadRequestError("invalid request")
}
