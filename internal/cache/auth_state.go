package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// TokenAuthState is the server-side snapshot behind one issued token,
// keyed by the token's jti. A hit saves the access_tokens lookup on
// every authenticated request; logout deletes the entry.
type TokenAuthState struct {
	TokenID   string `json:"token_id"`
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func tokenAuthStateKey(tokenID string) string {
	return fmt.Sprintf("auth:token:%s", tokenID)
}

// BuildTokenAuthState builds the snapshot from a token record and its user.
func BuildTokenAuthState(token *models.AccessToken, user *models.User) *TokenAuthState {
	if token == nil || user == nil {
		return nil
	}
	state := &TokenAuthState{
		TokenID:   token.TokenID,
		UserID:    user.ID,
		Role:      string(user.Role),
		UpdatedAt: time.Now().Unix(),
	}
	if token.ExpiresAt != nil {
		state.ExpiresAt = token.ExpiresAt.Unix()
	}
	return state
}

// GetTokenAuthState reads the snapshot for a token ID.
func GetTokenAuthState(ctx context.Context, tokenID string) (*TokenAuthState, bool, error) {
	if tokenID == "" {
		return nil, false, nil
	}
	var state TokenAuthState
	hit, err := GetJSON(ctx, tokenAuthStateKey(tokenID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetTokenAuthState writes the snapshot for a token ID.
func SetTokenAuthState(ctx context.Context, state *TokenAuthState) error {
	if state == nil || state.TokenID == "" {
		return nil
	}
	return SetJSON(ctx, tokenAuthStateKey(state.TokenID), state, authStateCacheTTL)
}

// DelTokenAuthState drops the snapshot so the token dies immediately.
func DelTokenAuthState(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return nil
	}
	return Del(ctx, tokenAuthStateKey(tokenID))
}
