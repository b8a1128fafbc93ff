package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "name", Message: "too short"})

		assert.Equal(t, "validation failed: email: is required; name: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "message", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
	errs.Add(validator.ValidationError{Field: "message", Message: "spam"})

	assert.True(t, errs.Has("message"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"too short", "spam"}, errs.Get("message"))
	assert.Equal(t, []string{"message", "email"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Jo"),
			validator.MinLen("name", "Jo", 2),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", ""),
			validator.MinLen("name", "", 2),
			validator.Required("email", "a@b.c"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"name"}, verrs.Fields())
	})
}

func TestFirst(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.First(validator.Required("name", "Jo")))
	})

	t.Run("stops at the first failing rule", func(t *testing.T) {
		called := false
		err := validator.First(
			validator.Required("name", " ").WithMessage("Name is required"),
			validator.Check("name", "never", func() bool {
				called = true
				return false
			}),
		)

		require.Error(t, err)
		assert.False(t, called, "rules after a failure must not run")
		assert.Equal(t, "Name is required", validator.Message(err))
	})
}

func TestMessage(t *testing.T) {
	assert.Empty(t, validator.Message(nil))
	assert.Empty(t, validator.Message(errors.New("boom")))

	wrapped := fmt.Errorf("submit: %w", validator.ValidationErrors{{Field: "email", Message: "bad"}})
	assert.Equal(t, "bad", validator.Message(wrapped))
	assert.True(t, validator.IsValidationError(wrapped))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
}

func TestRule_WithMessage(t *testing.T) {
	base := validator.MinLen("name", "J", 2)
	custom := base.WithMessage("Name must be at least 2 characters long")

	assert.Equal(t, "must be at least 2 characters long", base.Error.Message)
	assert.Equal(t, "Name must be at least 2 characters long", custom.Error.Message)
	assert.Equal(t, "validation.min_length", custom.Error.TranslationKey)
}
