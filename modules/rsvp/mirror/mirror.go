package mirror

import (
	"context"
	"fmt"

	"wedding-api/core/constants"
	"wedding-api/core/logger"
	"wedding-api/modules/rsvp/entity"

	"google.golang.org/api/sheets/v4"
)

// Mirror maintains the denormalized row-per-member projection of RSVP data.
// It is best-effort: callers must never treat the sheet as authoritative.
type Mirror interface {
	SyncFamily(ctx context.Context, familyName string, members []entity.FamilyMember) error
}

// SheetsMirror writes the projection into one Google Sheets tab, columns
// A-D = familyName, firstName, lastName, rsvpStatus, one row per member.
type SheetsMirror struct {
	srv           *sheets.Service
	spreadsheetID string
}

func NewSheetsMirror(srv *sheets.Service, spreadsheetID string) *SheetsMirror {
	return &SheetsMirror{srv: srv, spreadsheetID: spreadsheetID}
}

// SyncFamily rebuilds the family's contiguous block from the authoritative
// member list. The old block is spliced out wherever it sits (using its own
// extent, so shrinking leaves no orphan rows) and the new rows take its
// place; families never seen before are appended at the end.
func (m *SheetsMirror) SyncFamily(ctx context.Context, familyName string, members []entity.FamilyMember) error {
	resp, err := m.srv.Spreadsheets.Values.Get(m.spreadsheetID, constants.MirrorDataRange).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read mirror range: %w", err)
	}

	oldTotal := len(resp.Values)
	updated := SpliceFamilyRows(resp.Values, familyName, MemberRows(familyName, members))

	if len(updated) > 0 {
		_, err = m.srv.Spreadsheets.Values.Update(m.spreadsheetID, writeRange(len(updated)),
			&sheets.ValueRange{Values: updated}).
			ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("write mirror rows: %w", err)
		}
	}

	// Clear trailing rows left over when the sheet shrank.
	if oldTotal > len(updated) {
		_, err = m.srv.Spreadsheets.Values.Clear(m.spreadsheetID, staleRange(len(updated), oldTotal),
			&sheets.ClearValuesRequest{}).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("clear stale mirror rows: %w", err)
		}
	}

	logger.Info("Mirror:SyncFamily:Done", "family", familyName, "rows", len(members))
	return nil
}

// MemberRows converts a member list to its sheet representation.
func MemberRows(familyName string, members []entity.FamilyMember) [][]any {
	rows := make([][]any, 0, len(members))
	for _, member := range members {
		rows = append(rows, []any{familyName, member.FirstName, member.LastName, member.RSVPStatus})
	}
	return rows
}

// SpliceFamilyRows replaces the family's contiguous block in the existing
// sheet rows with newRows, preserving every other family's position. The
// block position is the first row whose first column equals familyName; any
// non-contiguous strays for the same family are dropped as well.
func SpliceFamilyRows(existing [][]any, familyName string, newRows [][]any) [][]any {
	insertAt := -1
	kept := make([][]any, 0, len(existing)+len(newRows))
	for _, row := range existing {
		if cellString(row, 0) == familyName {
			if insertAt == -1 {
				insertAt = len(kept)
			}
			continue
		}
		kept = append(kept, row)
	}

	if insertAt == -1 {
		insertAt = len(kept)
	}

	out := make([][]any, 0, len(kept)+len(newRows))
	out = append(out, kept[:insertAt]...)
	out = append(out, newRows...)
	out = append(out, kept[insertAt:]...)
	return out
}

// writeRange addresses rowCount data rows. Data starts at sheet row 2, below
// the header.
func writeRange(rowCount int) string {
	return fmt.Sprintf("%s!A2:D%d", constants.MirrorSheetName, 1+rowCount)
}

// staleRange addresses the rows left behind when the data shrank from
// oldCount to newCount rows.
func staleRange(newCount, oldCount int) string {
	return fmt.Sprintf("%s!A%d:D%d", constants.MirrorSheetName, 2+newCount, 1+oldCount)
}

func cellString(row []any, idx int) string {
	if idx >= len(row) {
		return ""
	}
	s, _ := row[idx].(string)
	return s
}
