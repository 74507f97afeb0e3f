// internal/app/features/services/handler.go
package services

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/kajbondu/kajbondu-server/internal/app/system/docid"
	"github.com/kajbondu/kajbondu-server/internal/app/system/reqlog"
	"github.com/kajbondu/kajbondu-server/internal/app/system/respond"
	"github.com/kajbondu/kajbondu-server/internal/app/system/timeouts"
	"github.com/kajbondu/kajbondu-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Store is what the services routes need from persistence.
// *servicestore.Store satisfies it.
type Store interface {
	List(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Service, error)
	FindByCategory(ctx context.Context, category string) ([]models.Service, error)
}

// Handler serves the read-only services catalogue.
type Handler struct {
	Store Store
	Log   *zap.Logger
}

func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Log:   logger,
	}
}

// ServeList handles GET /services and returns every service.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list services")
	defer cancel()

	services, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list services failed", zap.String("request_id", reqlog.ID(r.Context())), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	respond.JSON(w, http.StatusOK, services)
}

// ServeByID handles GET /services/id/{id}.
//
// 400 when id is not an ObjectID, 404 when no service has it.
func (h *Handler) ServeByID(w http.ResponseWriter, r *http.Request) {
	id, err := docid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid service ID", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get service")
	defer cancel()

	svc, err := h.Store.GetByID(ctx, id)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		respond.Error(w, http.StatusNotFound, "Service not found", nil)
	case err != nil:
		h.Log.Error("get service failed",
			zap.String("request_id", reqlog.ID(r.Context())),
			zap.String("service_id", id.Hex()),
			zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Server error", err)
	default:
		respond.JSON(w, http.StatusOK, svc)
	}
}

// ServeByCategory handles GET /services/category/{category}. The category is
// compared case-insensitively but otherwise exactly; an empty result is 404.
func (h *Handler) ServeByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	// chi routes on RawPath when the path has escapes url.Path cannot
	// represent, so the param may still be encoded.
	if r.URL.RawPath != "" {
		if u, err := url.PathUnescape(category); err == nil {
			category = u
		}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "find services by category")
	defer cancel()

	services, err := h.Store.FindByCategory(ctx, category)
	if err != nil {
		h.Log.Error("find services by category failed",
			zap.String("request_id", reqlog.ID(r.Context())),
			zap.String("category", category),
			zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	if len(services) == 0 {
		respond.Error(w, http.StatusNotFound, "No services found for this category", nil)
		return
	}
	respond.JSON(w, http.StatusOK, services)
}
