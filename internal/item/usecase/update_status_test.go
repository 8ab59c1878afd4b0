package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-custody/internal/item"
	"trade-custody/internal/item/usecase"
	"trade-custody/internal/model"
)

func TestUpdateStatusValidation(t *testing.T) {
	valid := item.UpdateStatusInput{
		ItemIDs:      []int64{21},
		Action:       item.ActionDelivered,
		ActingUserID: 7,
		ActingRole:   model.RoleVolunteer,
	}

	tests := []struct {
		name    string
		mutate  func(in *item.UpdateStatusInput)
		wantErr error
	}{
		{"empty ids", func(in *item.UpdateStatusInput) { in.ItemIDs = []int64{} }, item.ErrEmptyItemIDs},
		{"nil ids admin revert", func(in *item.UpdateStatusInput) {
			in.ItemIDs = nil
			in.Action = item.ActionPending
			in.ActingRole = model.RoleAdmin
		}, item.ErrEmptyItemIDs},
		{"unknown action", func(in *item.UpdateStatusInput) { in.Action = "at_org" }, item.ErrInvalidAction},
		{"missing actor", func(in *item.UpdateStatusInput) { in.ActingUserID = 0 }, item.ErrMissingActingUser},
		{"plain user", func(in *item.UpdateStatusInput) { in.ActingRole = model.RoleUser }, item.ErrInvalidRole},
		{"unknown role", func(in *item.UpdateStatusInput) { in.ActingRole = "GUEST" }, item.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newSeededRepo(t)
			sink := &recordingSink{}
			uc := usecase.New(repo, sink, &mockLogger{})

			in := valid
			in.ItemIDs = append([]int64(nil), valid.ItemIDs...)
			tt.mutate(&in)

			_, err := uc.UpdateStatus(context.Background(), in)
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, item.ErrInvalidRequest)
			assert.Zero(t, repo.sets)
			assert.Empty(t, sink.entries)
			assert.Equal(t, item.StatusPending, statusOf(t, repo, 21))
		})
	}
}

func TestUpdateStatusDeliveredToUser(t *testing.T) {
	for _, role := range []model.Role{model.RoleAdmin, model.RoleVolunteer} {
		t.Run(string(role), func(t *testing.T) {
			repo := newSeededRepo(t)
			uc := usecase.New(repo, &recordingSink{}, &mockLogger{})

			out, err := uc.UpdateStatus(context.Background(), item.UpdateStatusInput{
				ItemIDs:      []int64{42},
				Action:       item.ActionDeliveredToUser,
				ActingUserID: 3,
				ActingRole:   role,
			})
			require.NoError(t, err)
			require.Equal(t, []item.UpdatedItem{{ID: 42, NewStatus: item.StatusDelivered, Title: "Gloomhaven"}}, out.UpdatedItems)
			assert.Equal(t, item.StatusDelivered, statusOf(t, repo, 42))
		})
	}
}

func TestUpdateStatusAdminRevertsDelivered(t *testing.T) {
	repo := newSeededRepo(t)
	uc := usecase.New(repo, &recordingSink{}, &mockLogger{})

	out, err := uc.UpdateStatus(context.Background(), item.UpdateStatusInput{
		ItemIDs:      []int64{1144, 42, 21},
		Action:       item.ActionPending,
		ActingUserID: 1,
		ActingRole:   model.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, []item.UpdatedItem{
		{ID: 1144, NewStatus: item.StatusAtOrg, Title: "Brass: Birmingham"},
		{ID: 42, NewStatus: item.StatusPending, Title: "Gloomhaven"},
		{ID: 21, NewStatus: item.StatusPending, Title: "Twilight Imperium"},
	}, out.UpdatedItems)
	assert.Equal(t, item.StatusAtOrg, statusOf(t, repo, 1144))
	assert.Equal(t, item.StatusPending, statusOf(t, repo, 42))
	assert.Equal(t, 2, repo.sets, "unchanged items are not written")
}

func TestUpdateStatusVolunteerRevertIsForbidden(t *testing.T) {
	repo := newSeededRepo(t)
	sink := &recordingSink{}
	uc := usecase.New(repo, sink, &mockLogger{})

	_, err := uc.UpdateStatus(context.Background(), item.UpdateStatusInput{
		ItemIDs:      []int64{42, 1144},
		Action:       item.ActionPending,
		ActingUserID: 7,
		ActingRole:   model.RoleVolunteer,
	})
	require.ErrorIs(t, err, item.ErrForbidden)

	var forbidden *item.ForbiddenError
	require.True(t, errors.As(err, &forbidden))
	assert.Equal(t, int64(42), forbidden.ItemID, "first found item is the point of failure")
	assert.Equal(t, "Gloomhaven", forbidden.Title)

	assert.Zero(t, repo.sets)
	assert.Empty(t, sink.entries)
	assert.Equal(t, item.StatusAtOrg, statusOf(t, repo, 42))
	assert.Equal(t, item.StatusDelivered, statusOf(t, repo, 1144))
}

func TestUpdateStatusForbiddenSkipsMissingBeforeAbort(t *testing.T) {
	repo := newSeededRepo(t)
	uc := usecase.New(repo, &recordingSink{}, &mockLogger{})

	_, err := uc.UpdateStatus(context.Background(), item.UpdateStatusInput{
		ItemIDs:      []int64{99999, 1144},
		Action:       item.ActionPending,
		ActingUserID: 7,
		ActingRole:   model.RoleVolunteer,
	})

	var forbidden *item.ForbiddenError
	require.True(t, errors.As(err, &forbidden))
	assert.Equal(t, int64(1144), forbidden.ItemID)
	assert.Equal(t, item.StatusDelivered, statusOf(t, repo, 1144))
}

func TestUpdateStatusDeliveredIsIdempotent(t *testing.T) {
	repo := newSeededRepo(t)
	uc := usecase.New(repo, &recordingSink{}, &mockLogger{})
	in := item.UpdateStatusInput{
		ItemIDs:      []int64{42, 1144},
		Action:       item.ActionDelivered,
		ActingUserID: 7,
		ActingRole:   model.RoleVolunteer,
	}

	for i := 0; i < 2; i++ {
		out, err := uc.UpdateStatus(context.Background(), in)
		require.NoError(t, err)
		require.Len(t, out.UpdatedItems, 2)
		assert.Equal(t, item.StatusAtOrg, out.UpdatedItems[0].NewStatus)
		assert.Equal(t, item.StatusDelivered, out.UpdatedItems[1].NewStatus)
	}
	assert.Zero(t, repo.sets)
	assert.Equal(t, item.StatusAtOrg, statusOf(t, repo, 42))
	assert.Equal(t, item.StatusDelivered, statusOf(t, repo, 1144))
}

func TestUpdateStatusMissingItemIsSkipped(t *testing.T) {
	repo := newSeededRepo(t)
	logger := &mockLogger{}
	sink := &recordingSink{}
	uc := usecase.New(repo, sink, logger)

	out, err := uc.UpdateStatus(context.Background(), item.UpdateStatusInput{
		ItemIDs:      []int64{99999},
		Action:       item.ActionDelivered,
		ActingUserID: 7,
		ActingRole:   model.RoleVolunteer,
	})
	require.NoError(t, err)
	assert.NotNil(t, out.UpdatedItems)
	assert.Empty(t, out.UpdatedItems)
	assert.Empty(t, sink.entries)
	require.Len(t, logger.warnings, 1)
	assert.Contains(t, logger.warnings[0], "99999")
}

func TestUpdateStatusMixedBatch(t *testing.T) {
	repo := newSeededRepo(t)
	sink := &recordingSink{}
	uc := usecase.New(repo, sink, &mockLogger{})

	out, err := uc.UpdateStatus(context.Background(), item.UpdateStatusInput{
		ItemIDs:      []int64{21, 1144},
		Action:       item.ActionDelivered,
		ActingUserID: 7,
		ActingRole:   model.RoleVolunteer,
	})
	require.NoError(t, err)
	assert.Equal(t, []item.UpdatedItem{
		{ID: 21, NewStatus: item.StatusAtOrg, Title: "Twilight Imperium"},
		{ID: 1144, NewStatus: item.StatusDelivered, Title: "Brass: Birmingham"},
	}, out.UpdatedItems)
	assert.Equal(t, item.StatusAtOrg, statusOf(t, repo, 21))
	assert.Equal(t, item.StatusDelivered, statusOf(t, repo, 1144))

	require.Len(t, sink.entries, 2)
	first := sink.entries[0]
	assert.Equal(t, int64(7), first.ActorID)
	assert.Equal(t, model.RoleVolunteer, first.ActorRole)
	assert.Equal(t, int64(21), first.ItemID)
	assert.Equal(t, item.StatusPending, first.PreviousStatus)
	assert.Equal(t, item.StatusAtOrg, first.NewStatus)
	assert.Equal(t, first.BatchID, sink.entries[1].BatchID)
	assert.NotEqual(t, first.ID, sink.entries[1].ID)
}

func TestUpdateStatusDuplicateIDs(t *testing.T) {
	repo := newSeededRepo(t)
	uc := usecase.New(repo, &recordingSink{}, &mockLogger{})

	out, err := uc.UpdateStatus(context.Background(), item.UpdateStatusInput{
		ItemIDs:      []int64{1144, 1144},
		Action:       item.ActionPending,
		ActingUserID: 1,
		ActingRole:   model.RoleAdmin,
	})
	require.NoError(t, err)
	require.Len(t, out.UpdatedItems, 2)
	assert.Equal(t, item.StatusAtOrg, out.UpdatedItems[0].NewStatus)
	assert.Equal(t, item.StatusPending, out.UpdatedItems[1].NewStatus)
	assert.Equal(t, item.StatusPending, statusOf(t, repo, 1144))
}

func TestUpdateStatusStoreErrors(t *testing.T) {
	t.Run("lookup failure", func(t *testing.T) {
		repo := newSeededRepo(t)
		repo.getErr = errStoreDown
		uc := usecase.New(repo, &recordingSink{}, &mockLogger{})

		_, err := uc.UpdateStatus(context.Background(), item.UpdateStatusInput{
			ItemIDs: []int64{21}, Action: item.ActionDelivered, ActingUserID: 7, ActingRole: model.RoleVolunteer,
		})
		assert.ErrorIs(t, err, errStoreDown)
		assert.False(t, errors.Is(err, item.ErrInvalidRequest))
		assert.False(t, errors.Is(err, item.ErrForbidden))
	})

	t.Run("write failure", func(t *testing.T) {
		repo := newSeededRepo(t)
		repo.setErr = errStoreDown
		repo.setFailOn = 21
		uc := usecase.New(repo, &recordingSink{}, &mockLogger{})

		_, err := uc.UpdateStatus(context.Background(), item.UpdateStatusInput{
			ItemIDs: []int64{21}, Action: item.ActionDelivered, ActingUserID: 7, ActingRole: model.RoleVolunteer,
		})
		assert.ErrorIs(t, err, errStoreDown)
	})

	t.Run("write failure late in batch leaves earlier items untouched", func(t *testing.T) {
		repo := newSeededRepo(t)
		repo.setErr = errStoreDown
		repo.setFailOn = 1144
		sink := &recordingSink{}
		uc := usecase.New(repo, sink, &mockLogger{})

		out, err := uc.UpdateStatus(context.Background(), item.UpdateStatusInput{
			ItemIDs: []int64{42, 1144}, Action: item.ActionPending, ActingUserID: 1, ActingRole: model.RoleAdmin,
		})
		assert.ErrorIs(t, err, errStoreDown)
		assert.Empty(t, out.UpdatedItems)
		assert.Equal(t, 1, repo.batches, "changes go to the store in one write")
		assert.Equal(t, item.StatusAtOrg, statusOf(t, repo, 42))
		assert.Equal(t, item.StatusDelivered, statusOf(t, repo, 1144))
		assert.Empty(t, sink.entries, "nothing is audited when the write fails")
	})
}

func TestUpdateStatusCorruptStoredStatus(t *testing.T) {
	repo := newSeededRepo(t)
	repo.stored = map[int64]item.Status{42: "lost"}
	sink := &recordingSink{}
	uc := usecase.New(repo, sink, &mockLogger{})

	_, err := uc.UpdateStatus(context.Background(), item.UpdateStatusInput{
		ItemIDs: []int64{21, 42}, Action: item.ActionDelivered, ActingUserID: 7, ActingRole: model.RoleVolunteer,
	})
	require.ErrorIs(t, err, item.ErrCorruptStatus)
	assert.False(t, errors.Is(err, item.ErrInvalidRequest), "a bad stored row is not the caller's fault")
	assert.Zero(t, repo.batches)
	assert.Equal(t, item.StatusPending, statusOf(t, repo, 21))
	assert.Empty(t, sink.entries)
}

func TestUpdateStatusAuditFailureDoesNotFailBatch(t *testing.T) {
	repo := newSeededRepo(t)
	sink := &recordingSink{err: errors.New("audit table locked")}
	uc := usecase.New(repo, sink, &mockLogger{})

	out, err := uc.UpdateStatus(context.Background(), item.UpdateStatusInput{
		ItemIDs: []int64{21}, Action: item.ActionDelivered, ActingUserID: 7, ActingRole: model.RoleVolunteer,
	})
	require.NoError(t, err)
	require.Len(t, out.UpdatedItems, 1)
	assert.Equal(t, item.StatusAtOrg, statusOf(t, repo, 21))
	assert.Len(t, sink.entries, 1)
}
