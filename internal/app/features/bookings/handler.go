// internal/app/features/bookings/handler.go
package bookings

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	bookingstore "github.com/kajbondu/kajbondu-server/internal/app/store/bookings"
	"github.com/kajbondu/kajbondu-server/internal/app/system/docid"
	"github.com/kajbondu/kajbondu-server/internal/app/system/jsondoc"
	"github.com/kajbondu/kajbondu-server/internal/app/system/reqlog"
	"github.com/kajbondu/kajbondu-server/internal/app/system/respond"
	"github.com/kajbondu/kajbondu-server/internal/app/system/timeouts"
	"github.com/kajbondu/kajbondu-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is what the booking routes need from persistence.
// *bookingstore.Store satisfies it.
type Store interface {
	Create(ctx context.Context, b models.Booking) (any, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

// Handler serves booking creation, lookup and removal.
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

// ServeCreate handles POST /bookings. The body is stored as-is.
//
//	201 { "message": "Booking successful", "insertedId": "…" }
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var b models.Booking
	if err := jsondoc.Decode(r, &b); err != nil {
		if jsondoc.IsClientError(err) {
			respond.Error(w, http.StatusBadRequest, "Invalid booking", err)
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Booking failed", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create booking")
	defer cancel()

	id, err := h.Store.Create(ctx, b)
	if errors.Is(err, bookingstore.ErrDuplicateID) {
		respond.Error(w, http.StatusConflict, "Booking failed", err)
		return
	}
	if err != nil {
		h.Log.Error("create booking failed", zap.String("request_id", reqlog.ID(r.Context())), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Booking failed", err)
		return
	}

	respond.JSON(w, http.StatusCreated, models.InsertResponse{
		Message:    "Booking successful",
		InsertedID: id,
	})
}

// ServeByEmail handles GET /bookings?email=…
//
// The email query parameter is required (400 without it) and matched
// exactly. A user with no bookings gets 404.
func (h *Handler) ServeByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respond.Error(w, http.StatusBadRequest, "Email query parameter is required", nil)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "find bookings by email")
	defer cancel()

	bookings, err := h.Store.FindByEmail(ctx, email)
	if err != nil {
		h.Log.Error("find bookings by email failed", zap.String("request_id", reqlog.ID(r.Context())), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	if len(bookings) == 0 {
		respond.Error(w, http.StatusNotFound, "No bookings found for this user", nil)
		return
	}
	respond.JSON(w, http.StatusOK, bookings)
}

// ServeListAll handles GET /all-bookings, used by the admin panel.
func (h *Handler) ServeListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list bookings")
	defer cancel()

	bookings, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list bookings failed", zap.String("request_id", reqlog.ID(r.Context())), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	respond.JSON(w, http.StatusOK, bookings)
}

// ServeDelete handles DELETE /bookings/{id} and answers with the raw
// deletion result. An id that matches nothing still gets 200 with
// deletedCount 0; clients check the count.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := docid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid booking ID", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete booking")
	defer cancel()

	res, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete booking failed",
			zap.String("request_id", reqlog.ID(r.Context())),
			zap.String("booking_id", id.Hex()),
			zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to delete booking", err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
