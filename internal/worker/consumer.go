package worker

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/logger"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/provider"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/queue"
)

// Consumer handles async tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the task consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register attaches the task handlers to the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskAuthPurgeTokens, c.handleAuthPurgeTokens)
}

func (c *Consumer) handleAuthPurgeTokens(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_auth_purge_tokens_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.AuthPurgeTokensPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_auth_purge_tokens_unmarshal_failed", "error", err)
		return err
	}
	if c.AuthService == nil {
		logger.Warnw("worker_auth_purge_tokens_skip_auth_service_nil")
		return nil
	}
	if _, err := c.AuthService.PurgeExpiredTokens(); err != nil {
		logger.Warnw("worker_auth_purge_tokens_failed", "error", err)
		return err
	}
	return nil
}
