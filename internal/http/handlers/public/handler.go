package public

import "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/provider"

// Handler serves the public and authenticated storefront API.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
