package supplier

import "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/provider"

// Handler serves the supplier API: own catalog, incoming orders and
// sales reporting.
type Handler struct {
	*provider.Container
}

// New creates the supplier handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
