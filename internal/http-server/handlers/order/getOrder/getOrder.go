package getOrder

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
)

type OrderResponse struct {
	response.Response
	Order *models.Order `json:"order"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrderGetter
type OrderGetter interface {
	GetOrder(id int) (*models.Order, error)
}

func New(log *slog.Logger, orders OrderGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.order.getOrder.New"

		log = log.With(slog.String("op", op))

		orderIdStr := chi.URLParam(r, "id")
		if orderIdStr == "" {
			log.Error("order id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("order id is required"))
			return
		}

		orderID, err := strconv.Atoi(orderIdStr)
		if err != nil {
			log.Error("invalid order id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid order id format"))
			return
		}

		order, err := orders.GetOrder(orderID)
		if err != nil {
			log.Error("failed to get order", sl.Err(err))

			if errors.Is(err, storage.ErrOrderNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("order not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get order"))
			return
		}

		log.Info("order retrieved", slog.Int("order_id", orderID))

		render.JSON(w, r, OrderResponse{
			Response: response.OK(),
			Order:    order,
		})
	}
}
