package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wxgate/emwintg/internal/common"
)

// ValidateStreamConfig performs validation on the StreamConfig structure.
func ValidateStreamConfig(cfg *StreamConfig) error {
	validate := validator.New()

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("field '%s' failed on '%s'", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return common.NewConfigurationError("stream", "", strings.Join(messages, "; "))
		}
		return common.WrapError(err, "config validation")
	}

	// Feed names must be unique so that log lines stay attributable.
	seen := make(map[string]struct{}, len(cfg.Feeds))
	for _, feed := range cfg.Feeds {
		if _, dup := seen[feed.Name]; dup {
			return common.NewConfigurationError("feeds", "name", fmt.Sprintf("duplicate feed name '%s'", feed.Name))
		}
		seen[feed.Name] = struct{}{}
	}

	return nil
}
