package queue

import (
	"context"

	"wedding-api/core/config"
	"wedding-api/core/constants"
	"wedding-api/core/logger"

	"github.com/hibiken/asynq"
)

// Queue owns the asynq client used to enqueue background tasks and the
// worker server that processes them. Both sides share the application redis.
type Queue struct {
	Client *asynq.Client
	server *asynq.Server
	mux    *asynq.ServeMux
}

func New(cfg config.RedisConfig) *Queue {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			constants.MirrorQueue: 1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("Queue:TaskError", "type", task.Type(), "error", err)
		}),
	})

	return &Queue{
		Client: asynq.NewClient(redisOpt),
		server: server,
		mux:    asynq.NewServeMux(),
	}
}

// HandleFunc registers a task handler. Modules call this during Init, before
// Start.
func (q *Queue) HandleFunc(taskType string, handler func(context.Context, *asynq.Task) error) {
	q.mux.HandleFunc(taskType, handler)
}

func (q *Queue) Start() error {
	return q.server.Start(q.mux)
}

func (q *Queue) Shutdown() {
	q.server.Shutdown()
	if err := q.Client.Close(); err != nil {
		logger.Error("Queue:Close:Error:", err)
	}
}
