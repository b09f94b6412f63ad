package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/storage/storage.go
//   type Data struct {
//       SortBy    string `json:"sort_by" validate:"required,sortkey"`
//       ViewMode  string `json:"view_mode" validate:"required,viewmode"`
//       ProfileID string `json:"profile_id,omitempty" validate:"omitempty,uuid4"`
//   }
//
// Besides the built-in tags, two domain tags are registered:
//   sortkey  - a lower-camel identifier such as "matchScore" or "nameAsc"
//   viewmode - one of "list" or "grid"

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate

	sortKeyPattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails on empty tags or nil funcs.
		_ = validatorInst.RegisterValidation("sortkey", isSortKey)
		_ = validatorInst.RegisterValidation("viewmode", isViewMode)
	})
	return validatorInst
}

func isSortKey(fl validator.FieldLevel) bool {
	return sortKeyPattern.MatchString(fl.Field().String())
}

func isViewMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "list", "grid":
		return true
	default:
		return false
	}
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
