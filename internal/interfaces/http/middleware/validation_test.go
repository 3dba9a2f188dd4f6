package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartNumberPattern(t *testing.T) {
	require.NoError(t, RegisterCustomValidators())

	valid := []string{"91255A540", "1234A56", "98023a031", "90107A029"}
	for _, pn := range valid {
		assert.True(t, partNumberPattern.MatchString(pn), pn)
	}

	invalid := []string{"A540", "91255", "91255-540", "part number"}
	for _, pn := range invalid {
		assert.False(t, partNumberPattern.MatchString(pn), pn)
	}
}

func TestRegisterCustomValidatorsIdempotent(t *testing.T) {
	require.NoError(t, RegisterCustomValidators())
	require.NoError(t, RegisterCustomValidators())
}
