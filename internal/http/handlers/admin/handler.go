package admin

import "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/provider"

// Handler serves the admin API: catalog moderation, order oversight and
// supplier account creation.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
