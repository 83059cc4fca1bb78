package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
)

func TestRole(t *testing.T) {
	t.Run("valid roles", func(t *testing.T) {
		for _, role := range types.AllRoles() {
			gt.Bool(t, role.IsValid()).True()
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		gt.Bool(t, types.Role("owner").IsValid()).False()
		gt.Bool(t, types.Role("").IsValid()).False()
	})

	t.Run("normalize empty to user", func(t *testing.T) {
		gt.Value(t, types.Role("").Normalize()).Equal(types.RoleUser)
		gt.Value(t, types.RoleAdmin.Normalize()).Equal(types.RoleAdmin)
	})

	t.Run("parse", func(t *testing.T) {
		role, err := types.ParseRole("curator")
		gt.NoError(t, err).Required()
		gt.Value(t, role).Equal(types.RoleCurator)

		_, err = types.ParseRole("owner")
		gt.Error(t, err)
	})
}
