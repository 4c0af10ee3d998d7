package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	require.Equal(t, RoleAdmin, ParseRole("admin"))
	require.Equal(t, RoleUser, ParseRole("user"))
	require.Equal(t, RoleUser, ParseRole(""))
	require.Equal(t, RoleUser, ParseRole("Admin"))
	require.Equal(t, RoleUser, ParseRole("superuser"))
}

func TestRoleIsAdmin(t *testing.T) {
	require.True(t, RoleAdmin.IsAdmin())
	require.False(t, RoleUser.IsAdmin())
	require.False(t, Role("other").IsAdmin())
}
