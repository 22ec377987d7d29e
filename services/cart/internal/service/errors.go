package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Skotchmaster/storefront/services/cart/internal/repo"
	"gorm.io/gorm"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation")
	ErrInvalidState = errors.New("invalid state")
)

// ValidationError carries one message per offending json field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func fieldError(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// translate maps store errors onto the service sentinels.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, repo.ErrNotOwner):
		return fmt.Errorf("%s: %w", what, ErrUnauthorized)
	case errors.Is(err, repo.ErrCartEmpty), errors.Is(err, repo.ErrNoShippingAddress):
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s already exists: %w", what, ErrInvalidState)
	default:
		return err
	}
}
