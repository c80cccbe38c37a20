package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ruleMessages = map[string]string{
	"lot_type":      "unknown lot type",
	"finish_level":  "must be one of basic, standard, premium, luxury",
	"postal_code":   "must be a valid postal code",
	"property_type": "unknown property type",
	"range":         "max must be greater than or equal to min",
	"required":      "is required",
	"email":         "must be a valid email",
}

// Message turns a validation error into a short, user facing message.
func Message(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := ruleMessages[fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed on the %q rule", fe.Tag())
			if fe.Param() != "" {
				msg = fmt.Sprintf("failed on the %q rule (%s)", fe.Tag(), fe.Param())
			}
		}
		messages = append(messages, fmt.Sprintf("%s: %s", fe.Namespace(), msg))
	}
	return strings.Join(messages, "; ")
}
