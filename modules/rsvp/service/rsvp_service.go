package service

import (
	"context"

	"wedding-api/core/errors"
	"wedding-api/core/logger"
	"wedding-api/modules/rsvp/entity"
	"wedding-api/modules/rsvp/mirror"
	"wedding-api/modules/rsvp/repository"

	"github.com/google/uuid"
)

// RSVPService owns the per-family RSVP state. Every write commits to the
// document store first and then enqueues a mirror sync; the sheet is updated
// by the queue worker and may lag until its retries succeed.
type RSVPService struct {
	repo     repository.RSVPRepositoryInterface
	enqueuer mirror.Enqueuer
	locks    *familyLocks
}

func NewRSVPService(repo repository.RSVPRepositoryInterface, enqueuer mirror.Enqueuer) *RSVPService {
	return &RSVPService{
		repo:     repo,
		enqueuer: enqueuer,
		locks:    newFamilyLocks(),
	}
}

// GetRSVP returns nil when the family has not submitted yet. Clients use the
// nil case to show the first-time form instead of the edit form.
func (s *RSVPService) GetRSVP(ctx context.Context, familyName string) (*entity.RSVPRecord, *errors.AppError) {
	record, err := s.repo.GetByFamilyName(ctx, familyName)
	if err != nil {
		logger.Error("RSVPService:GetRSVP:GetByFamilyName:Error:", err)
		return nil, errors.NewAppError(errors.ErrUpstreamFailure, "failed to load RSVP record", err)
	}
	return record, nil
}

// SubmitRSVP upserts the full record: create-or-replace, idempotent for an
// identical member list. Members submitted without a stable id reclaim the
// stored id of their name match, so resubmits from clients that never echo
// ids do not re-key anyone; only genuinely new members get a fresh one.
func (s *RSVPService) SubmitRSVP(ctx context.Context, familyName string, members []entity.FamilyMember) *errors.AppError {
	lock := s.locks.get(familyName)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.repo.GetByFamilyName(ctx, familyName)
	if err != nil {
		logger.Error("RSVPService:SubmitRSVP:GetByFamilyName:Error:", err)
		return errors.NewAppError(errors.ErrUpstreamFailure, "failed to load RSVP record", err)
	}

	if members == nil {
		members = []entity.FamilyMember{}
	}
	claimed := make(map[string]bool)
	for _, m := range members {
		if m.MemberID != "" {
			claimed[m.MemberID] = true
		}
	}
	for i := range members {
		if members[i].MemberID == "" {
			members[i].MemberID = carryForwardID(existing, members[i], claimed)
		}
		if members[i].MemberID == "" {
			members[i].MemberID = uuid.NewString()
		}
		members[i].Normalize()
	}

	record := &entity.RSVPRecord{
		FamilyName:    familyName,
		FamilyMembers: members,
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		logger.Error("RSVPService:SubmitRSVP:Upsert:Error:", err)
		return errors.NewAppError(errors.ErrUpstreamFailure, "failed to save RSVP record", err)
	}

	if err := s.enqueuer.EnqueueSyncFamily(ctx, familyName); err != nil {
		// The record is committed; only the mirror is stale until a later
		// sync for this family runs.
		logger.Error("RSVPService:SubmitRSVP:EnqueueSyncFamily:Error:", err)
		return errors.NewAppError(errors.ErrUpstreamFailure, "RSVP saved but mirror sync could not be scheduled", err)
	}

	return nil
}

// DeleteFamilyMember removes the first member matching the selector and
// persists the reduced list. The record survives even when it empties; a
// missing member is a silent no-op, a missing record is NotFound.
func (s *RSVPService) DeleteFamilyMember(ctx context.Context, familyName string, member entity.FamilyMember) *errors.AppError {
	lock := s.locks.get(familyName)
	lock.Lock()
	defer lock.Unlock()

	record, err := s.repo.GetByFamilyName(ctx, familyName)
	if err != nil {
		logger.Error("RSVPService:DeleteFamilyMember:GetByFamilyName:Error:", err)
		return errors.NewAppError(errors.ErrUpstreamFailure, "failed to load RSVP record", err)
	}
	if record == nil {
		return errors.NewAppError(errors.ErrNotFound, "no RSVP record for family", nil)
	}

	remaining := make([]entity.FamilyMember, 0, len(record.FamilyMembers))
	removed := false
	for _, m := range record.FamilyMembers {
		if !removed && m.Matches(member) {
			removed = true
			continue
		}
		remaining = append(remaining, m)
	}

	if !removed {
		return nil
	}

	record.FamilyMembers = remaining
	if err := s.repo.Upsert(ctx, record); err != nil {
		logger.Error("RSVPService:DeleteFamilyMember:Upsert:Error:", err)
		return errors.NewAppError(errors.ErrUpstreamFailure, "failed to save RSVP record", err)
	}

	if err := s.enqueuer.EnqueueSyncFamily(ctx, familyName); err != nil {
		logger.Error("RSVPService:DeleteFamilyMember:EnqueueSyncFamily:Error:", err)
		return errors.NewAppError(errors.ErrUpstreamFailure, "RSVP saved but mirror sync could not be scheduled", err)
	}

	return nil
}

// carryForwardID finds the stored id for a resubmitted member. Each stored id
// is handed out at most once, so duplicate names pair up in order instead of
// sharing one id.
func carryForwardID(existing *entity.RSVPRecord, member entity.FamilyMember, claimed map[string]bool) string {
	if existing == nil {
		return ""
	}
	for _, m := range existing.FamilyMembers {
		if m.MemberID == "" || claimed[m.MemberID] {
			continue
		}
		if m.FirstName == member.FirstName && m.LastName == member.LastName {
			claimed[m.MemberID] = true
			return m.MemberID
		}
	}
	return ""
}

// CheckHasSubmitted is true iff a record exists, even with an empty member
// list.
func (s *RSVPService) CheckHasSubmitted(ctx context.Context, familyName string) (bool, *errors.AppError) {
	exists, err := s.repo.Exists(ctx, familyName)
	if err != nil {
		logger.Error("RSVPService:CheckHasSubmitted:Exists:Error:", err)
		return false, errors.NewAppError(errors.ErrUpstreamFailure, "failed to check RSVP record", err)
	}
	return exists, nil
}
