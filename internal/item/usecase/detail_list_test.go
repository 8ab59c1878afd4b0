package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-custody/internal/item"
	"trade-custody/internal/item/audit"
	"trade-custody/internal/item/usecase"
	"trade-custody/internal/model"
)

func TestDetail(t *testing.T) {
	uc := usecase.New(newSeededRepo(t), &recordingSink{}, &mockLogger{})

	out, err := uc.Detail(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Gloomhaven", out.Item.Title)

	_, err = uc.Detail(context.Background(), 99999)
	assert.ErrorIs(t, err, item.ErrItemNotFound)
}

func TestList(t *testing.T) {
	uc := usecase.New(newSeededRepo(t), &recordingSink{}, &mockLogger{})

	out, err := uc.List(context.Background(), item.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 20, out.Limit)
	assert.Len(t, out.Items, 3)

	out, err = uc.List(context.Background(), item.ListInput{Status: item.StatusPending, Limit: 500, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, 20, out.Limit)
	assert.Equal(t, 0, out.Offset)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(21), out.Items[0].ID)

	_, err = uc.List(context.Background(), item.ListInput{Status: "lost"})
	assert.ErrorIs(t, err, item.ErrInvalidRequest)
}

func TestAuditsFollowTransitions(t *testing.T) {
	repo := newSeededRepo(t)
	uc := usecase.New(repo, audit.NewStoreSink(repo), &mockLogger{})
	ctx := context.Background()

	_, err := uc.UpdateStatus(ctx, item.UpdateStatusInput{
		ItemIDs: []int64{21}, Action: item.ActionDelivered, ActingUserID: 7, ActingRole: model.RoleVolunteer,
	})
	require.NoError(t, err)
	_, err = uc.UpdateStatus(ctx, item.UpdateStatusInput{
		ItemIDs: []int64{21}, Action: item.ActionDeliveredToUser, ActingUserID: 8, ActingRole: model.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Audits(ctx, 21)
	require.NoError(t, err)
	require.Len(t, out.Entries, 2)
	assert.Equal(t, item.StatusAtOrg, out.Entries[0].NewStatus)
	assert.Equal(t, item.StatusDelivered, out.Entries[1].NewStatus)
	assert.Equal(t, int64(8), out.Entries[1].ActorID)

	_, err = uc.Audits(ctx, 99999)
	assert.ErrorIs(t, err, item.ErrItemNotFound)
}
