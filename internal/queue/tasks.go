package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/constants"
)

const (
	// TaskAuthPurgeTokens removes expired access tokens.
	TaskAuthPurgeTokens = constants.TaskAuthPurgeTokens
)

// AuthPurgeTokensPayload carries the cutoff for the token sweep.
type AuthPurgeTokensPayload struct {
	Before time.Time `json:"before"`
}

// NewAuthPurgeTokensTask creates the expired-token cleanup task.
func NewAuthPurgeTokensTask(payload AuthPurgeTokensPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAuthPurgeTokens, body), nil
}
