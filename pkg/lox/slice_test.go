package lox_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"profile_validator/pkg/lox"
)

func TestMapErr(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		input    []string
		expected []int
		err      bool
	}{
		{
			name:     "All items map",
			input:    []string{"1", "20", "300"},
			expected: []int{1, 20, 300},
		},
		{
			name:     "Empty collection",
			input:    []string{},
			expected: []int{},
		},
		{
			name:  "First failure stops",
			input: []string{"1", "x", "3"},
			err:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			result, err := lox.MapErr(tc.input, strconv.Atoi)
			if tc.err {
				var numErr *strconv.NumError
				rq.True(errors.As(err, &numErr))
				rq.Nil(result)

				return
			}

			rq.NoError(err)
			rq.Equal(tc.expected, result)
		})
	}
}
