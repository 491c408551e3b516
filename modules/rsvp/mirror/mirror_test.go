package mirror

import (
	"context"
	"testing"

	"wedding-api/core/constants"
	"wedding-api/modules/rsvp/entity"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(family, first, last, status string) []any {
	return []any{family, first, last, status}
}

func TestMemberRows(t *testing.T) {
	rows := MemberRows("Velez Family", []entity.FamilyMember{
		{FirstName: "Jane", LastName: "Velez", RSVPStatus: constants.StatusGoing},
		{FirstName: "Luis", LastName: "Velez", RSVPStatus: constants.StatusNotGoing},
	})

	assert.Equal(t, [][]any{
		row("Velez Family", "Jane", "Velez", constants.StatusGoing),
		row("Velez Family", "Luis", "Velez", constants.StatusNotGoing),
	}, rows)
}

func TestWriteRange(t *testing.T) {
	// Row 1 is the header; n data rows occupy rows 2 through n+1.
	assert.Equal(t, "RSVP LIST!A2:D2", writeRange(1))
	assert.Equal(t, "RSVP LIST!A2:D4", writeRange(3))
}

func TestStaleRange(t *testing.T) {
	// Shrinking from 5 rows to 1 leaves rows 3 through 6 to clear.
	assert.Equal(t, "RSVP LIST!A3:D6", staleRange(1, 5))
	// Emptied entirely: every data row is stale.
	assert.Equal(t, "RSVP LIST!A2:D3", staleRange(0, 2))
}

func TestSpliceFamilyRows_ReplacesInPlace(t *testing.T) {
	existing := [][]any{
		row("Rivera Family", "Ana", "Rivera", constants.StatusGoing),
		row("Velez Family", "Jane", "Velez", constants.StatusGoing),
		row("Velez Family", "Luis", "Velez", constants.StatusGoing),
		row("Ortiz Family", "Leo", "Ortiz", constants.StatusUnknown),
	}

	updated := SpliceFamilyRows(existing, "Velez Family", [][]any{
		row("Velez Family", "Jane", "Velez", constants.StatusNotGoing),
	})

	assert.Equal(t, [][]any{
		row("Rivera Family", "Ana", "Rivera", constants.StatusGoing),
		row("Velez Family", "Jane", "Velez", constants.StatusNotGoing),
		row("Ortiz Family", "Leo", "Ortiz", constants.StatusUnknown),
	}, updated)
}

func TestSpliceFamilyRows_ShrinkLeavesNoOrphans(t *testing.T) {
	existing := [][]any{
		row("Velez Family", "Jane", "Velez", constants.StatusGoing),
		row("Velez Family", "Luis", "Velez", constants.StatusGoing),
		row("Velez Family", "Ana", "Velez", constants.StatusGoing),
	}

	updated := SpliceFamilyRows(existing, "Velez Family", [][]any{
		row("Velez Family", "Jane", "Velez", constants.StatusGoing),
	})

	require.Len(t, updated, 1)
}

func TestSpliceFamilyRows_GrowDoesNotStompNeighbours(t *testing.T) {
	existing := [][]any{
		row("Velez Family", "Jane", "Velez", constants.StatusGoing),
		row("Ortiz Family", "Leo", "Ortiz", constants.StatusGoing),
	}

	updated := SpliceFamilyRows(existing, "Velez Family", [][]any{
		row("Velez Family", "Jane", "Velez", constants.StatusGoing),
		row("Velez Family", "Luis", "Velez", constants.StatusGoing),
		row("Velez Family", "Ana", "Velez", constants.StatusGoing),
	})

	require.Len(t, updated, 4)
	assert.Equal(t, "Ortiz Family", updated[3][0])
}

func TestSpliceFamilyRows_AppendsUnknownFamily(t *testing.T) {
	existing := [][]any{
		row("Rivera Family", "Ana", "Rivera", constants.StatusGoing),
	}

	updated := SpliceFamilyRows(existing, "Velez Family", [][]any{
		row("Velez Family", "Jane", "Velez", constants.StatusGoing),
	})

	require.Len(t, updated, 2)
	assert.Equal(t, "Rivera Family", updated[0][0])
	assert.Equal(t, "Velez Family", updated[1][0])
}

func TestSpliceFamilyRows_EmptyNewRowsClearsFamily(t *testing.T) {
	existing := [][]any{
		row("Velez Family", "Jane", "Velez", constants.StatusGoing),
		row("Rivera Family", "Ana", "Rivera", constants.StatusGoing),
	}

	updated := SpliceFamilyRows(existing, "Velez Family", nil)

	require.Len(t, updated, 1)
	assert.Equal(t, "Rivera Family", updated[0][0])
}

func TestSpliceFamilyRows_DropsNonContiguousStrays(t *testing.T) {
	// Strays can appear if an older mirror write tore; a sync removes them.
	existing := [][]any{
		row("Velez Family", "Jane", "Velez", constants.StatusGoing),
		row("Rivera Family", "Ana", "Rivera", constants.StatusGoing),
		row("Velez Family", "Luis", "Velez", constants.StatusGoing),
	}

	updated := SpliceFamilyRows(existing, "Velez Family", [][]any{
		row("Velez Family", "Ana", "Velez", constants.StatusGoing),
	})

	require.Len(t, updated, 2)
	assert.Equal(t, "Velez Family", updated[0][0])
	assert.Equal(t, "Ana", updated[0][1])
	assert.Equal(t, "Rivera Family", updated[1][0])
}

type fakeMirror struct {
	families map[string][][]any
}

func (m *fakeMirror) SyncFamily(_ context.Context, familyName string, members []entity.FamilyMember) error {
	if m.families == nil {
		m.families = make(map[string][][]any)
	}
	m.families[familyName] = MemberRows(familyName, members)
	return nil
}

type stubRepo struct {
	record *entity.RSVPRecord
}

func (r *stubRepo) GetByFamilyName(context.Context, string) (*entity.RSVPRecord, error) {
	return r.record, nil
}
func (r *stubRepo) Upsert(context.Context, *entity.RSVPRecord) error { return nil }
func (r *stubRepo) Exists(context.Context, string) (bool, error)     { return r.record != nil, nil }

func TestHandleSyncFamily_RebuildsFromStore(t *testing.T) {
	repo := &stubRepo{record: &entity.RSVPRecord{
		FamilyName: "Velez Family",
		FamilyMembers: []entity.FamilyMember{
			{FirstName: "Jane", LastName: "Velez", RSVPStatus: constants.StatusGoing},
		},
	}}
	m := &fakeMirror{}
	handler := NewTaskHandler(repo, m)

	task := asynq.NewTask(constants.TaskMirrorSyncFamily, []byte(`{"familyName":"Velez Family"}`))
	require.NoError(t, handler.HandleSyncFamily(context.Background(), task))

	assert.Equal(t, [][]any{
		row("Velez Family", "Jane", "Velez", constants.StatusGoing),
	}, m.families["Velez Family"])
}

func TestHandleSyncFamily_NoRecordSyncsEmpty(t *testing.T) {
	m := &fakeMirror{}
	handler := NewTaskHandler(&stubRepo{}, m)

	task := asynq.NewTask(constants.TaskMirrorSyncFamily, []byte(`{"familyName":"Velez Family"}`))
	require.NoError(t, handler.HandleSyncFamily(context.Background(), task))

	assert.Empty(t, m.families["Velez Family"])
}
