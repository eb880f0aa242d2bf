package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Zero", input: 0, expected: 0},
		{name: "Arredonda para cima", input: 35.7849, expected: 35.78},
		{name: "Arredonda a terceira casa", input: 12.346, expected: 12.35},
		{name: "Negativo", input: -4.321, expected: -4.32},
		{name: "NaN vira zero", input: math.NaN(), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.input))
		})
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-05-16")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("16/05/2024")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 12)
	assert.Regexp(t, `^[A-Za-z0-9]{12}$`, id)
}

func TestPrettyJson(t *testing.T) {
	pretty := PrettyJson(map[string]float64{"wacc": 0.178})
	assert.JSONEq(t, `{"wacc":0.178}`, pretty)
	assert.Contains(t, pretty, "\n  \"wacc\"")

	assert.JSONEq(t, `{"a":1}`, PrettyJson([]byte(`{"a":1}`)))
	assert.Equal(t, "texto", PrettyJson([]byte("texto")))
}
