package validate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})

	return instance
}

// Error lists the fields that failed validation and the rule each one broke.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}

	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// Invalid builds an Error for a single field.
func Invalid(field, rule string) error {
	return &Error{Fields: map[string]string{field: rule}}
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("validating: %w", err)
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}

	return &Error{Fields: fields}
}

// IsValidation reports whether err carries field validation failures.
func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
