package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserID(t *testing.T) {
	id, ef := UserID("id", "42")
	require.Nil(t, ef)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", " ", "abc", "0", "-3", "1.5", "99999999999999999999"} {
		_, ef := UserID("id", raw)
		assert.NotNil(t, ef, raw)
	}
}

func TestAmount(t *testing.T) {
	cases := []struct {
		body string
		want int64
	}{
		{"1000", 1000},
		{" 250\n", 250},
		{"-500", -500},
		{"0", 0},
		{`{"amount": 300}`, 300},
		{`{"amount":-1}`, -1},
	}
	for _, tc := range cases {
		got, err := Amount(strings.NewReader(tc.body))
		require.NoError(t, err, tc.body)
		assert.Equal(t, tc.want, got, tc.body)
	}
}

func TestAmount_Rejects(t *testing.T) {
	for _, body := range []string{"", "abc", "1.5", `{}`, `{"amount":"x"}`, `{"amount":1e3}`, "[1]"} {
		_, err := Amount(strings.NewReader(body))
		assert.ErrorIs(t, err, ErrBadAmountBody, body)
	}
}

func TestErrs_Error(t *testing.T) {
	errs := Errs{{Field: "id", Msg: "required"}, {Field: "amount", Msg: "must be >= 1"}}
	assert.Equal(t, "id: required; amount: must be >= 1", errs.Error())
}
