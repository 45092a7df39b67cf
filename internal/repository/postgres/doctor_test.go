package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLikeEscaper(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "cardiology", want: "cardiology"},
		{name: "underscore escaped", in: "_", want: `\_`},
		{name: "percent escaped", in: "100%", want: `100\%`},
		{name: "backslash escaped", in: `\`, want: `\\`},
		{name: "mixed", in: `a_b%c\d`, want: `a\_b\%c\\d`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, likeEscaper.Replace(tc.in))
		})
	}
}
