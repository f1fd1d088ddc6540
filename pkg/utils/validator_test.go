package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedPayload struct {
	Email string `validate:"required,email"`
	Size  string `validate:"required,oneof=MEI ME EPP EMP EG"`
	Name  string `validate:"omitempty,min=3"`
}

func TestValidateStructPasses(t *testing.T) {
	err := ValidateStruct(&validatedPayload{
		Email: "a@b.com",
		Size:  "MEI",
	})
	assert.NoError(t, err)
}

func TestGetValidationErrorsFieldMap(t *testing.T) {
	err := ValidateStruct(&validatedPayload{
		Email: "not-an-email",
		Size:  "HUGE",
		Name:  "ab",
	})
	require.Error(t, err)

	fields := GetValidationErrors(err)

	// lower-camel field names so the map matches the JSON casing
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "size")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields["email"], "valid email")
	assert.Contains(t, fields["size"], "MEI, ME, EPP, EMP, EG")
	assert.Contains(t, fields["name"], "at least 3")
}

func TestGetValidationErrorsRequired(t *testing.T) {
	err := ValidateStruct(&validatedPayload{})
	require.Error(t, err)

	fields := GetValidationErrors(err)
	assert.Equal(t, "email is required", fields["email"])
	assert.Equal(t, "size is required", fields["size"])
	assert.NotContains(t, fields, "name")
}
