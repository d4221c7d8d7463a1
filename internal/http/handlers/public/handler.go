package public

import "github.com/joymarket/joymarket/internal/provider"

// Handler customer-facing and guest API handlers
type Handler struct {
	*provider.Container
}

// New creates the storefront handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
