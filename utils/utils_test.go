package utils

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFloat(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 1000.5, 1000.5},
		{"int", 7, 7},
		{"numeric string", " 2500 ", 2500},
		{"grouped digits", "1,25,000", 125000},
		{"empty string", "", 0},
		{"text", "abc", 0},
		{"json number", json.Number("12.5"), 12.5},
		{"bool", true, 0},
		{"NaN", math.NaN(), 0},
		{"Inf", math.Inf(1), 0},
		{"negative", "-3", -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToFloat(tc.in))
		})
	}
}

func TestToIntClampsOutOfRange(t *testing.T) {
	assert.Equal(t, 3, ToInt("3.9"))
	assert.Equal(t, -2, ToInt(-2.7))
	assert.Equal(t, math.MaxInt32, ToInt(1e30))
	assert.Equal(t, math.MinInt32, ToInt("-1e30"))
	assert.Equal(t, 0, ToInt("abc"))
}

func TestToStringAndStrings(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "12.5", ToString(12.5))
	assert.Equal(t, "x", ToString("x"))
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, ToStrings("a.pdf, b.pdf,"))
	assert.Equal(t, []string{"a.pdf"}, ToStrings([]any{"a.pdf", ""}))
	assert.Equal(t, []string{}, ToStrings(nil))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool("yes"))
	assert.True(t, ToBool(1.0))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(nil))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "2501250.00", FormatAmount(2501250))
	assert.Equal(t, "0.33", FormatAmount(1.0/3))
}

func TestEditTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	token, expires, err := issuer.GenerateEditToken("session-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := issuer.ValidateEditToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
}

func TestEditTokenRejectsOtherSecret(t *testing.T) {
	token, _, err := NewTokenIssuer("secret", time.Hour).GenerateEditToken("session-1")
	require.NoError(t, err)

	_, err = NewTokenIssuer("other", time.Hour).ValidateEditToken(token)
	assert.Error(t, err)
}

func TestEditTokenExpires(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := issuer.GenerateEditToken("session-1")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Minute).ValidateEditToken(token)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("loud")
	assert.Error(t, err)
}
