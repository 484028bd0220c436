package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAccessScope(t *testing.T) {
	cases := []struct {
		name      string
		callerID  string
		role      Role
		requested string
		want      string
		wantErr   error
	}{
		{"employee self default", "u1", RoleEmployee, "", "u1", nil},
		{"employee explicit self", "u1", RoleEmployee, "u1", "u1", nil},
		{"employee other user forbidden", "u1", RoleEmployee, "u2", "", ErrForbiddenScope},
		{"manager targets other user", "m1", RoleManager, "u2", "u2", nil},
		{"manager defaults to self", "m1", RoleManager, "", "m1", nil},
		{"admin targets other user", "a1", RoleAdmin, "u2", "u2", nil},
		{"admin defaults to self", "a1", RoleAdmin, "", "a1", nil},
		{"unknown role rejected", "x1", Role("OWNER"), "", "", ErrInsufficientPermissions},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ResolveAccessScope(c.callerID, c.role, c.requested)
			if c.wantErr != nil {
				require.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
