// internal/app/features/workers/handler.go
package workers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	workerstore "github.com/kajbondu/kajbondu-server/internal/app/store/workers"
	"github.com/kajbondu/kajbondu-server/internal/app/system/docid"
	"github.com/kajbondu/kajbondu-server/internal/app/system/jsondoc"
	"github.com/kajbondu/kajbondu-server/internal/app/system/reqlog"
	"github.com/kajbondu/kajbondu-server/internal/app/system/respond"
	"github.com/kajbondu/kajbondu-server/internal/app/system/timeouts"
	"github.com/kajbondu/kajbondu-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is what the worker application routes need from persistence.
// *workerstore.Store satisfies it.
type Store interface {
	Create(ctx context.Context, app models.WorkerApplication) (any, error)
	List(ctx context.Context) ([]models.WorkerApplication, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type Handler struct {
	Store        Store
	MaxBodyBytes int64
	Log          *zap.Logger
}

func NewHandler(store Store, maxBodyBytes int64, logger *zap.Logger) *Handler {
	return &Handler{
		Store:        store,
		MaxBodyBytes: maxBodyBytes,
		Log:          logger,
	}
}

// ServeCreate handles POST /worker.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var app models.WorkerApplication
	if err := jsondoc.Decode(r, &app); err != nil {
		if jsondoc.IsClientError(err) {
			respond.Error(w, http.StatusBadRequest, "Invalid worker application", err)
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Failed to submit worker application", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create worker application")
	defer cancel()

	id, err := h.Store.Create(ctx, app)
	if errors.Is(err, workerstore.ErrDuplicateID) {
		respond.Error(w, http.StatusConflict, "Failed to submit worker application", err)
		return
	}
	if err != nil {
		h.Log.Error("create worker application failed", zap.String("request_id", reqlog.ID(r.Context())), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to submit worker application", err)
		return
	}

	respond.JSON(w, http.StatusCreated, models.InsertResponse{
		Message:    "Worker application submitted successfully",
		InsertedID: id,
	})
}

// ServeList handles GET /worker.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list worker applications")
	defer cancel()

	apps, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list worker applications failed", zap.String("request_id", reqlog.ID(r.Context())), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to retrieve worker applications", err)
		return
	}
	respond.JSON(w, http.StatusOK, apps)
}

// ServeDelete handles DELETE /worker/{id}. Unlike bookings, a missing
// application is reported as 404.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := docid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid worker application ID", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete worker application")
	defer cancel()

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete worker application failed",
			zap.String("request_id", reqlog.ID(r.Context())),
			zap.String("worker_id", id.Hex()),
			zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to delete worker application", err)
		return
	}
	if n == 0 {
		respond.Error(w, http.StatusNotFound, "Worker application not found", nil)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"message": "Worker application deleted successfully"})
}
