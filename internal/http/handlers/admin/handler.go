package admin

import "github.com/sochitour-next/internal/provider"

// Handler serves the back-office API: admin login, catalog CRUD, upload.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
