package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/bistro/internal/validate"
)

type params struct {
	Name   string `validate:"required"`
	Amount int64  `validate:"gte=0"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, validate.Struct(params{Name: "Flour", Amount: 10}))

	err := validate.Struct(params{Amount: -1})
	require.Error(t, err)
	assert.True(t, validate.IsValidation(err))

	var ve *validate.Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, map[string]string{"Name": "required", "Amount": "gte"}, ve.Fields)
	assert.Equal(t, "validation failed: Amount: gte, Name: required", err.Error())
}
