package mirror

import (
	"context"
	"encoding/json"
	"fmt"

	"wedding-api/core/constants"
	"wedding-api/core/logger"
	"wedding-api/modules/rsvp/repository"

	"github.com/hibiken/asynq"
)

// SyncFamilyPayload carries only the family name. The handler re-reads the
// authoritative record, so a retried or reordered task always converges on
// the current document-store state.
type SyncFamilyPayload struct {
	FamilyName string `json:"familyName"`
}

// Enqueuer decouples the RSVP service from asynq so tests can fake it.
type Enqueuer interface {
	EnqueueSyncFamily(ctx context.Context, familyName string) error
}

type TaskEnqueuer struct {
	client *asynq.Client
}

func NewTaskEnqueuer(client *asynq.Client) *TaskEnqueuer {
	return &TaskEnqueuer{client: client}
}

func (e *TaskEnqueuer) EnqueueSyncFamily(ctx context.Context, familyName string) error {
	payload, err := json.Marshal(SyncFamilyPayload{FamilyName: familyName})
	if err != nil {
		return err
	}

	task := asynq.NewTask(constants.TaskMirrorSyncFamily, payload)
	_, err = e.client.EnqueueContext(ctx, task,
		asynq.Queue(constants.MirrorQueue),
		asynq.MaxRetry(constants.MirrorMaxRetry),
		asynq.Timeout(constants.MirrorTaskTimeout),
	)
	if err != nil {
		return fmt.Errorf("enqueue mirror sync: %w", err)
	}
	return nil
}

// TaskHandler processes queued mirror syncs.
type TaskHandler struct {
	repo   repository.RSVPRepositoryInterface
	mirror Mirror
}

func NewTaskHandler(repo repository.RSVPRepositoryInterface, m Mirror) *TaskHandler {
	return &TaskHandler{repo: repo, mirror: m}
}

// HandleSyncFamily rebuilds one family's sheet block from the stored record.
// A family with no record syncs an empty block, which clears stale rows.
func (h *TaskHandler) HandleSyncFamily(ctx context.Context, task *asynq.Task) error {
	var payload SyncFamilyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	record, err := h.repo.GetByFamilyName(ctx, payload.FamilyName)
	if err != nil {
		logger.Error("Mirror:HandleSyncFamily:GetByFamilyName:Error:", err)
		return err
	}

	if record == nil {
		return h.mirror.SyncFamily(ctx, payload.FamilyName, nil)
	}
	return h.mirror.SyncFamily(ctx, payload.FamilyName, record.FamilyMembers)
}
