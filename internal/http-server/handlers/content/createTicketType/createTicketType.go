package createTicketType

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"photizon/internal/lib/api/response"
	"photizon/internal/lib/logger/sl"
	"photizon/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type TicketTypeRequest struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Quantity *int            `json:"quantity" validate:"omitempty,min=0"`
}

type TicketTypeResponse struct {
	response.Response
	TicketTypeID int `json:"ticket_type_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketTypeCreator
type TicketTypeCreator interface {
	CreateTicketType(contentID int, name string, price decimal.Decimal, quantity *int) (int, error)
}

func New(log *slog.Logger, ticketTypes TicketTypeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.createTicketType.New"

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

		var req TicketTypeRequest

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

		id, err := ticketTypes.CreateTicketType(contentID, req.Name, req.Price, req.Quantity)
		if err != nil {
			log.Error("failed to create ticket type", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrContentNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("content not found"))
			case errors.Is(err, storage.ErrNotAnEvent):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("ticket types can only be created for events"))
			case errors.Is(err, storage.ErrDuplicateName):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("ticket type name already exists for this event"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create ticket type"))
			}
			return
		}

		log.Info("ticket type created", slog.Int("ticket_type_id", id))

		responseOK(w, r, id)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, id int) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, TicketTypeResponse{
		Response:     response.OK(),
		TicketTypeID: id,
	})
}
