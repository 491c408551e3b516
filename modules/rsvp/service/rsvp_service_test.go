package service

import (
	"context"
	"errors"
	"testing"

	"wedding-api/core/constants"
	apperrors "wedding-api/core/errors"
	"wedding-api/modules/rsvp/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	records map[string]*entity.RSVPRecord
	failing bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*entity.RSVPRecord)}
}

func (r *fakeRepo) GetByFamilyName(_ context.Context, familyName string) (*entity.RSVPRecord, error) {
	if r.failing {
		return nil, errors.New("mongo down")
	}
	record, ok := r.records[familyName]
	if !ok {
		return nil, nil
	}
	// Copy so callers cannot mutate stored state in place.
	members := append([]entity.FamilyMember(nil), record.FamilyMembers...)
	return &entity.RSVPRecord{FamilyName: record.FamilyName, FamilyMembers: members}, nil
}

func (r *fakeRepo) Upsert(_ context.Context, record *entity.RSVPRecord) error {
	if r.failing {
		return errors.New("mongo down")
	}
	members := append([]entity.FamilyMember(nil), record.FamilyMembers...)
	r.records[record.FamilyName] = &entity.RSVPRecord{FamilyName: record.FamilyName, FamilyMembers: members}
	return nil
}

func (r *fakeRepo) Exists(_ context.Context, familyName string) (bool, error) {
	if r.failing {
		return false, errors.New("mongo down")
	}
	_, ok := r.records[familyName]
	return ok, nil
}

type fakeEnqueuer struct {
	synced []string
	err    error
}

func (e *fakeEnqueuer) EnqueueSyncFamily(_ context.Context, familyName string) error {
	if e.err != nil {
		return e.err
	}
	e.synced = append(e.synced, familyName)
	return nil
}

func members(names ...[2]string) []entity.FamilyMember {
	out := make([]entity.FamilyMember, 0, len(names))
	for _, n := range names {
		out = append(out, entity.FamilyMember{FirstName: n[0], LastName: n[1], RSVPStatus: constants.StatusGoing})
	}
	return out
}

func TestSubmitRSVP_RoundTrip(t *testing.T) {
	repo := newFakeRepo()
	enq := &fakeEnqueuer{}
	svc := NewRSVPService(repo, enq)
	ctx := context.Background()

	submitted := members([2]string{"Jane", "Velez"})
	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family", submitted))

	record, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)
	require.NotNil(t, record)
	require.Len(t, record.FamilyMembers, 1)
	assert.Equal(t, "Jane", record.FamilyMembers[0].FirstName)
	assert.Equal(t, "Velez", record.FamilyMembers[0].LastName)
	assert.Equal(t, constants.StatusGoing, record.FamilyMembers[0].RSVPStatus)
	assert.NotEmpty(t, record.FamilyMembers[0].MemberID)

	assert.Equal(t, []string{"Velez Family"}, enq.synced)
}

func TestSubmitRSVP_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewRSVPService(repo, &fakeEnqueuer{})
	ctx := context.Background()

	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family",
		members([2]string{"Jane", "Velez"}, [2]string{"Luis", "Velez"})))

	first, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)

	// Resubmitting the same list without ids, as a client that never echoes
	// them does, leaves the record unchanged, ids included.
	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family",
		members([2]string{"Jane", "Velez"}, [2]string{"Luis", "Velez"})))

	second, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)
	assert.Equal(t, first, second)
}

func TestSubmitRSVP_KeepsIDsForReturningMembers(t *testing.T) {
	repo := newFakeRepo()
	svc := NewRSVPService(repo, &fakeEnqueuer{})
	ctx := context.Background()

	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family", members([2]string{"Jane", "Velez"})))
	first, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)
	janeID := first.FamilyMembers[0].MemberID

	// Jane comes back id-less alongside a new member.
	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family",
		members([2]string{"Jane", "Velez"}, [2]string{"Luis", "Velez"})))

	second, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)
	require.Len(t, second.FamilyMembers, 2)
	assert.Equal(t, janeID, second.FamilyMembers[0].MemberID)
	assert.NotEmpty(t, second.FamilyMembers[1].MemberID)
	assert.NotEqual(t, janeID, second.FamilyMembers[1].MemberID)
}

func TestSubmitRSVP_DuplicateNamesKeepDistinctIDs(t *testing.T) {
	repo := newFakeRepo()
	svc := NewRSVPService(repo, &fakeEnqueuer{})
	ctx := context.Background()

	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family",
		members([2]string{"Jane", "Velez"}, [2]string{"Jane", "Velez"})))
	first, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)
	require.Len(t, first.FamilyMembers, 2)
	require.NotEqual(t, first.FamilyMembers[0].MemberID, first.FamilyMembers[1].MemberID)

	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family",
		members([2]string{"Jane", "Velez"}, [2]string{"Jane", "Velez"})))

	second, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)
	assert.Equal(t, first, second)
}

func TestSubmitRSVP_ReplacesNotMerges(t *testing.T) {
	repo := newFakeRepo()
	svc := NewRSVPService(repo, &fakeEnqueuer{})
	ctx := context.Background()

	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family",
		members([2]string{"Jane", "Velez"}, [2]string{"Luis", "Velez"})))
	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family", members([2]string{"Ana", "Velez"})))

	record, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)
	require.Len(t, record.FamilyMembers, 1)
	assert.Equal(t, "Ana", record.FamilyMembers[0].FirstName)
}

func TestSubmitRSVP_PreservesInsertionOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := NewRSVPService(repo, &fakeEnqueuer{})
	ctx := context.Background()

	submitted := members([2]string{"Ana", "Velez"}, [2]string{"Jane", "Velez"}, [2]string{"Luis", "Velez"})
	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family", submitted))

	record, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)
	require.Len(t, record.FamilyMembers, 3)
	assert.Equal(t, "Ana", record.FamilyMembers[0].FirstName)
	assert.Equal(t, "Jane", record.FamilyMembers[1].FirstName)
	assert.Equal(t, "Luis", record.FamilyMembers[2].FirstName)
}

func TestSubmitRSVP_DefaultsStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := NewRSVPService(repo, &fakeEnqueuer{})
	ctx := context.Background()

	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family",
		[]entity.FamilyMember{{FirstName: "Jane", LastName: "Velez"}}))

	record, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)
	assert.Equal(t, constants.StatusUnknown, record.FamilyMembers[0].RSVPStatus)
}

func TestGetRSVP_NoRecordIsNil(t *testing.T) {
	svc := NewRSVPService(newFakeRepo(), &fakeEnqueuer{})

	record, appErr := svc.GetRSVP(context.Background(), "Velez Family")
	require.Nil(t, appErr)
	assert.Nil(t, record)
}

func TestDeleteFamilyMember_RemovesByName(t *testing.T) {
	repo := newFakeRepo()
	svc := NewRSVPService(repo, &fakeEnqueuer{})
	ctx := context.Background()

	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family",
		members([2]string{"Jane", "Velez"}, [2]string{"Luis", "Velez"})))

	require.Nil(t, svc.DeleteFamilyMember(ctx, "Velez Family",
		entity.FamilyMember{FirstName: "Jane", LastName: "Velez"}))

	record, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)
	require.Len(t, record.FamilyMembers, 1)
	assert.Equal(t, "Luis", record.FamilyMembers[0].FirstName)
}

func TestDeleteFamilyMember_RemovesByID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewRSVPService(repo, &fakeEnqueuer{})
	ctx := context.Background()

	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family",
		members([2]string{"Jane", "Velez"}, [2]string{"Luis", "Velez"})))

	record, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)

	require.Nil(t, svc.DeleteFamilyMember(ctx, "Velez Family",
		entity.FamilyMember{MemberID: record.FamilyMembers[0].MemberID}))

	after, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)
	require.Len(t, after.FamilyMembers, 1)
	assert.Equal(t, "Luis", after.FamilyMembers[0].FirstName)
}

func TestDeleteFamilyMember_EmptiesButKeepsRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := NewRSVPService(repo, &fakeEnqueuer{})
	ctx := context.Background()

	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family", members([2]string{"Jane", "Velez"})))
	require.Nil(t, svc.DeleteFamilyMember(ctx, "Velez Family",
		entity.FamilyMember{FirstName: "Jane", LastName: "Velez"}))

	record, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)
	require.NotNil(t, record)
	assert.Empty(t, record.FamilyMembers)

	// The emptied record still counts as submitted.
	has, appErr := svc.CheckHasSubmitted(ctx, "Velez Family")
	require.Nil(t, appErr)
	assert.True(t, has)
}

func TestDeleteFamilyMember_NoRecordIsNotFound(t *testing.T) {
	svc := NewRSVPService(newFakeRepo(), &fakeEnqueuer{})

	appErr := svc.DeleteFamilyMember(context.Background(), "Velez Family",
		entity.FamilyMember{FirstName: "Jane", LastName: "Velez"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestDeleteFamilyMember_AbsentMemberIsNoOp(t *testing.T) {
	repo := newFakeRepo()
	enq := &fakeEnqueuer{}
	svc := NewRSVPService(repo, enq)
	ctx := context.Background()

	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family", members([2]string{"Luis", "Velez"})))
	syncsBefore := len(enq.synced)

	require.Nil(t, svc.DeleteFamilyMember(ctx, "Velez Family",
		entity.FamilyMember{FirstName: "Jane", LastName: "Velez"}))

	record, appErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, appErr)
	require.Len(t, record.FamilyMembers, 1)
	assert.Equal(t, "Luis", record.FamilyMembers[0].FirstName)
	// Nothing changed, so no mirror sync was scheduled.
	assert.Len(t, enq.synced, syncsBefore)
}

func TestCheckHasSubmitted(t *testing.T) {
	repo := newFakeRepo()
	svc := NewRSVPService(repo, &fakeEnqueuer{})
	ctx := context.Background()

	has, appErr := svc.CheckHasSubmitted(ctx, "Velez Family")
	require.Nil(t, appErr)
	assert.False(t, has)

	require.Nil(t, svc.SubmitRSVP(ctx, "Velez Family", members([2]string{"Jane", "Velez"})))

	has, appErr = svc.CheckHasSubmitted(ctx, "Velez Family")
	require.Nil(t, appErr)
	assert.True(t, has)
}

func TestSubmitRSVP_EnqueueFailureSurfacesButRecordCommits(t *testing.T) {
	repo := newFakeRepo()
	enq := &fakeEnqueuer{err: errors.New("redis down")}
	svc := NewRSVPService(repo, enq)
	ctx := context.Background()

	appErr := svc.SubmitRSVP(ctx, "Velez Family", members([2]string{"Jane", "Velez"}))
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrUpstreamFailure, appErr.Code)

	// The document-store write already committed; only the mirror lags.
	record, getErr := svc.GetRSVP(ctx, "Velez Family")
	require.Nil(t, getErr)
	require.NotNil(t, record)
}

func TestSubmitRSVP_RepoFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failing = true
	svc := NewRSVPService(repo, &fakeEnqueuer{})

	appErr := svc.SubmitRSVP(context.Background(), "Velez Family", members([2]string{"Jane", "Velez"}))
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrUpstreamFailure, appErr.Code)
}
