package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserQuery_Username(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		want    string
		wantErr bool
	}{
		{name: "simple login", user: "octocat", want: "octocat"},
		{name: "hyphenated login", user: "mona-lisa", want: "mona-lisa"},
		{name: "surrounding whitespace trimmed", user: "  octocat ", want: "octocat"},
		{name: "empty", user: "", wantErr: true},
		{name: "blank", user: "   ", wantErr: true},
		{name: "leading hyphen", user: "-octocat", wantErr: true},
		{name: "legacy trailing hyphen", user: "dev-", want: "dev-"},
		{name: "legacy double hyphen", user: "octo--cat", want: "octo--cat"},
		{name: "dot", user: "octo.cat", wantErr: true},
		{name: "percent encoded", user: "octo%2Fcat", wantErr: true},
		{name: "path traversal", user: "../orgs", wantErr: true},
		{name: "slash", user: "octo/cat", wantErr: true},
		{name: "too long", user: strings.Repeat("a", 40), wantErr: true},
		{name: "max length", user: strings.Repeat("a", 39), want: strings.Repeat("a", 39)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewUserQuery(tt.user).Username()
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrInvalidUsername))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
