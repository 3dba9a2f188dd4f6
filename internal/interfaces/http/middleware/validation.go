package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// partNumberPattern matches catalog part numbers like 91255A540.
var partNumberPattern = regexp.MustCompile(`^[0-9]{2,6}[A-Za-z][0-9A-Za-z]{1,8}$`)

// validPartNumber is the "partnum" binding tag. Empty values are left to
// the required tag.
func validPartNumber(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return partNumberPattern.MatchString(value)
}

// RegisterCustomValidators installs partkit's binding tags on gin's
// validator engine. Safe to call more than once.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("partnum", validPartNumber)
}
