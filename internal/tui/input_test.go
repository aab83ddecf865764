package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/pokedex/internal/service"
)

func TestParseInt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "42", want: 42},
		{in: " \t7\r\n", want: 7},
		{in: "-3", want: -3},
		{in: "+15", want: 15},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
		{in: "12abc", wantErr: true},
		{in: "4 5", wantErr: true},
		{in: "0x10", wantErr: true},
		{in: "3.5", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseInt(tc.in)
		if tc.wantErr {
			require.ErrorIs(t, err, service.ErrInvalidInput, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestCleanInput(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Ash Ketchum", cleanInput("\t Ash Ketchum \r\n"))
	require.Empty(t, cleanInput(" \t\r"))
}
