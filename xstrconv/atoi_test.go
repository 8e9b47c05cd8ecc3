package xstrconv_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strext/xstrconv"
)

func TestAtoi(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"255", 255},
		{"+27", 27},
		{"-141", -141},
		{"9223372036854775807", 9223372036854775807},
		{"-9223372036854775808", -9223372036854775808},
		{"0000000000000000000042", 42},
	}
	for _, c := range cases {
		got, err := xstrconv.Atoi(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestAtoiErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", xstrconv.ErrSyntax},
		{"-", xstrconv.ErrSyntax},
		{"12a", xstrconv.ErrSyntax},
		{" 1", xstrconv.ErrSyntax},
		{"9223372036854775808", xstrconv.ErrRange},
		{"-9223372036854775809", xstrconv.ErrRange},
		{"99999999999999999999999", xstrconv.ErrRange},
	}
	for _, c := range cases {
		_, err := xstrconv.Atoi(c.in)
		require.Error(t, err, c.in)
		assert.True(t, errors.Is(err, c.want), "%q: %v", c.in, err)

		var numErr *xstrconv.NumError
		require.True(t, errors.As(err, &numErr))
		assert.Equal(t, "Atoi", numErr.Func)
		assert.Equal(t, c.in, numErr.Num)
	}
}

func TestNumErrorMessage(t *testing.T) {
	_, err := xstrconv.Atoi("x")
	assert.EqualError(t, err, `xstrconv.Atoi: parsing "x": invalid syntax`)
}
