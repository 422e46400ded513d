package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStackSize(t *testing.T) {
	cases := []struct {
		in      string
		want    StackSize
		wantErr bool
	}{
		{in: "3", want: Stack3},
		{in: "5", want: Stack5},
		{in: "3 Stack", want: Stack3},
		{in: " 5 Stack ", want: Stack5},
		{in: "4", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseStackSize(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStackSize_UnmarshalText(t *testing.T) {
	var s StackSize
	require.NoError(t, s.UnmarshalText([]byte("5")))
	assert.Equal(t, Stack5, s)
	assert.Equal(t, 5, s.Capacity())

	assert.Error(t, s.UnmarshalText([]byte("five")))
	assert.Equal(t, Stack5, s)
}
