package home

import (
	"net/http"

	"github.com/kajbondu/kajbondu-server/internal/app/system/respond"
)

// Welcome is the body of GET /.
const Welcome = "Welcome to kajBondu Server!"

// Handler serves the root greeting. It needs no dependencies.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ServeRoot handles GET /.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	respond.Text(w, http.StatusOK, Welcome)
}
