package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountMarshalsWithTwoDecimals(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{160, `"160.00"`},
		{-500, `"-500.00"`},
		{0, `"0.00"`},
		{99.9, `"99.90"`},
	}
	for _, tt := range tests {
		b, err := json.Marshal(NewAmount(tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(b))
	}
}

func TestAmountUnmarshalsNumbersAndStrings(t *testing.T) {
	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`160`), &a))
	assert.Equal(t, "160.00", a.StringFixed(2))

	require.NoError(t, json.Unmarshal([]byte(`"-500.00"`), &a))
	assert.Equal(t, "-500.00", a.StringFixed(2))
}

func TestAmountRoundTripsThroughJSON(t *testing.T) {
	b, err := json.Marshal(NewAmount(-123.45))
	require.NoError(t, err)
	var a Amount
	require.NoError(t, json.Unmarshal(b, &a))
	assert.Equal(t, "-123.45", a.StringFixed(2))
}

func TestAmountStoresNormalizedValue(t *testing.T) {
	v, err := NewAmount(160).Value()
	require.NoError(t, err)
	assert.Equal(t, "160.00", v)
}

func TestAmountScanRejectsMalformedInput(t *testing.T) {
	var a Amount
	assert.Error(t, a.Scan("not a number"))
}
