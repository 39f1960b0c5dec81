package errs_test

import (
	"errors"
	"testing"

	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipmentId", "123")

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("shipmentId", "123", cause)

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: shipmentId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("quotationId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("iata code")

		assert.Equal(t, "iata code", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: iata code", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("iata code", cause)

		assert.Equal(t, "iata code", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: iata code (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 150, 0, 120)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is latitude, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("longitude", -5, 0, 100, cause)

		assert.Equal(t, "longitude", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is longitude, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customer")

		assert.Equal(t, "customer", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customer", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing partner")
		err := errs.NewValueIsRequiredErrorWithCause("customer", cause)

		assert.Equal(t, "customer", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customer (cause: missing partner)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("port code", "AEJEA")

		assert.Equal(t, "port code", err.ParamName)
		assert.Equal(t, "AEJEA", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, `object already exists: port code "AEJEA"`, err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewObjectAlreadyExistsErrorWithCause("vessel code", "MSC01", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			`object already exists: vessel code "MSC01" (cause: duplicate key value violates unique constraint)`,
			err.Error())
	})
}

func TestBusinessRuleViolationError(t *testing.T) {
	t.Run("NewBusinessRuleViolationError", func(t *testing.T) {
		err := errs.NewBusinessRuleViolationError("origin and destination ports cannot be the same")

		assert.Equal(t, "origin and destination ports cannot be the same", err.Rule)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"business rule is violated: origin and destination ports cannot be the same",
			err.Error())
		assert.Equal(t, errs.ErrBusinessRuleIsViolated, err.Unwrap())
	})

	t.Run("NewBusinessRuleViolationErrorWithCause", func(t *testing.T) {
		cause := errors.New("no cost lines")
		err := errs.NewBusinessRuleViolationErrorWithCause("quotation cannot be confirmed", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"business rule is violated: quotation cannot be confirmed (cause: no cost lines)",
			err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrObjectAlreadyExists)
		require.Error(t, errs.ErrBusinessRuleIsViolated)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
		assert.Equal(t, "business rule is violated", errs.ErrBusinessRuleIsViolated.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("shipmentId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("iata code")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("latitude", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("customer")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		alreadyExistsErr := errs.NewObjectAlreadyExistsError("code", "FOB")
		require.ErrorIs(t, alreadyExistsErr, errs.ErrObjectAlreadyExists)

		ruleErr := errs.NewBusinessRuleViolationError("rule")
		require.ErrorIs(t, ruleErr, errs.ErrBusinessRuleIsViolated)
	})

	t.Run("errors.Is works through errors.Join", func(t *testing.T) {
		joined := errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsInvalidError("iata code"))
		require.ErrorIs(t, joined, errs.ErrValueIsRequired)
		require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
	})
}
