package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rcliao/sfx-library/internal/apperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks required fields after trimming.
func (in SoundInput) Validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.AudioURL = strings.TrimSpace(in.AudioURL)
	return validationError(validate.Struct(in))
}

// Validate checks required fields after trimming.
func (in SuggestionInput) Validate() error {
	in.SoundName = strings.TrimSpace(in.SoundName)
	return validationError(validate.Struct(in))
}

func validationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Wrap(apperr.CodeValidation, "invalid input", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return apperr.Validation("invalid fields: %s", strings.Join(fields, ", "))
}
