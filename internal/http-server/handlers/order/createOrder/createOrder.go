package createOrder

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"photizon/internal/lib/api/response"
	"photizon/internal/lib/logger/sl"
	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type OrderRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	DeliveryType string `json:"delivery_type" validate:"omitempty,oneof=DIGITAL PHYSICAL"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
	IsTicket     bool   `json:"is_ticket"`
	TicketTypeID *int   `json:"ticket_type_id"`
	TicketTier   string `json:"ticket_tier" validate:"omitempty,oneof=CLASSIC VIP PREMIUM"`
}

type OrderResponse struct {
	response.Response
	Order *models.Order `json:"order"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrderCreator
type OrderCreator interface {
	CreateOrder(contentID int, p storage.OrderParams) (*models.Order, error)
}

func New(log *slog.Logger, orders OrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.order.createOrder.New"

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

		var req OrderRequest

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

		params := storage.OrderParams{
			UserID:       req.UserID,
			DeliveryType: models.DeliveryDigital,
			Quantity:     req.Quantity,
			IsTicket:     req.IsTicket,
			TicketTypeID: req.TicketTypeID,
		}
		if req.DeliveryType != "" {
			params.DeliveryType = models.DeliveryType(req.DeliveryType)
		}
		if req.TicketTier != "" {
			tier := models.TicketTier(req.TicketTier)
			params.TicketTier = &tier
		}

		order, err := orders.CreateOrder(contentID, params)
		if err != nil {
			log.Error("failed to create order", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrContentNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("content not found"))
			case errors.Is(err, storage.ErrInsufficientInventory):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Not enough tickets available for the selected tier"))
			case errors.Is(err, storage.ErrTierRequired):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("ticket tier is required for this event"))
			case errors.Is(err, storage.ErrInvalidTier):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid ticket tier"))
			case errors.Is(err, storage.ErrTicketTypeNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket type not found"))
			case errors.Is(err, storage.ErrNotAnEvent):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("tickets can only be purchased for events"))
			case errors.Is(err, storage.ErrOwnChurch):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("church owners cannot order from their own church"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create order"))
			}
			return
		}

		log.Info("order created", slog.Int("order_id", order.ID))

		responseOK(w, r, order)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, order *models.Order) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, OrderResponse{
		Response: response.OK(),
		Order:    order,
	})
}
