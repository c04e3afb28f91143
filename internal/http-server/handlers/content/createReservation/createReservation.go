package createReservation

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"photizon/internal/lib/api/response"
	"photizon/internal/lib/logger/sl"
	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ReservationRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
	TicketTypeID *int   `json:"ticket_type_id"`
	TicketTier   string `json:"ticket_tier" validate:"omitempty,oneof=CLASSIC VIP PREMIUM"`
}

type ReservationResponse struct {
	response.Response
	Reservation *models.TicketReservation `json:"reservation"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketReserver
type TicketReserver interface {
	ReserveTickets(contentID int, p storage.ReservationParams, ttl time.Duration) (*models.TicketReservation, error)
}

func New(log *slog.Logger, reservations TicketReserver, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.createReservation.New"

		log = log.With(slog.String("op", op))

		contentIdStr := chi.URLParam(r, "id")
		if contentIdStr == "" {
			log.Error("content id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("content id is required"))
			return
		}

		contentID, err := strconv.Atoi(contentIdStr)
		if err != nil {
			log.Error("invalid content id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid content id format"))
			return
		}

		log = log.With(slog.Int("content_id", contentID))

		var req ReservationRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		params := storage.ReservationParams{
			UserID:       req.UserID,
			Quantity:     req.Quantity,
			TicketTypeID: req.TicketTypeID,
		}
		if req.TicketTier != "" {
			tier := models.TicketTier(req.TicketTier)
			params.TicketTier = &tier
		}

		reservation, err := reservations.ReserveTickets(contentID, params, ttl)
		if err != nil {
			log.Error("failed to reserve tickets", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrContentNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("content not found"))
			case errors.Is(err, storage.ErrTicketTypeNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket type not found"))
			case errors.Is(err, storage.ErrInsufficientInventory):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Not enough tickets available for the selected tier"))
			case errors.Is(err, storage.ErrTierRequired):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("ticket tier is required for this event"))
			case errors.Is(err, storage.ErrInvalidTier):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid ticket tier"))
			case errors.Is(err, storage.ErrNotAnEvent):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("tickets can only be reserved for events"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to reserve tickets"))
			}
			return
		}

		log.Info("tickets reserved",
			slog.Int("reservation_id", reservation.ID),
			slog.Time("expires_at", reservation.ExpiresAt),
		)

		responseOK(w, r, reservation)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, reservation *models.TicketReservation) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, ReservationResponse{
		Response:    response.OK(),
		Reservation: reservation,
	})
}
