package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/pkg/vberr"
)

func expectInvalidReq(t *testing.T, err error, fragment string) {
	t.Helper()
	var vetErr *vberr.VetError
	require.ErrorAs(t, err, &vetErr)
	assert.Equal(t, vberr.CodeInvalidRequest, vetErr.ErrorCode)
	assert.Contains(t, vetErr.Message, fragment)
}

func TestDeleteMemberSelf(t *testing.T) {
	t.Parallel()

	s := &User{}
	actor := &model.Profile{ID: "p1", WorkspaceID: "ws1", Role: constant.RoleAdmin}

	err := s.DeleteMember(context.Background(), actor, "p1")
	expectInvalidReq(t, err, "your own account")
}

func TestGuardLastAdmin(t *testing.T) {
	t.Parallel()

	admin := &model.Profile{ID: "p2", WorkspaceID: "ws1", Role: constant.RoleAdmin}
	vet := &model.Profile{ID: "p3", WorkspaceID: "ws1", Role: constant.RoleVeterinarian}

	t.Run("last admin is kept", func(t *testing.T) {
		expectInvalidReq(t, guardLastAdmin(admin, 1), "last admin")
	})

	t.Run("zero count never allows removal", func(t *testing.T) {
		assert.Error(t, guardLastAdmin(admin, 0))
	})

	t.Run("admin with a peer can go", func(t *testing.T) {
		assert.NoError(t, guardLastAdmin(admin, 2))
	})

	t.Run("other roles are unaffected by the count", func(t *testing.T) {
		assert.NoError(t, guardLastAdmin(vet, 1))
	})
}
