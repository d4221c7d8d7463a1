package courier

import "github.com/joymarket/joymarket/internal/provider"

// Handler courier-facing API handlers
type Handler struct {
	*provider.Container
}

// New creates the courier handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
