package getTicketTypes

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

type TicketTypesResponse struct {
	response.Response
	TicketTypes []models.TicketType `json:"ticket_types"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketTypesGetter
type TicketTypesGetter interface {
	GetTicketTypes(contentID int) ([]models.TicketType, error)
}

func New(log *slog.Logger, ticketTypes TicketTypesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.getTicketTypes.New"

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

		list, err := ticketTypes.GetTicketTypes(contentID)
		if err != nil {
			log.Error("failed to get ticket types", sl.Err(err))

			if errors.Is(err, storage.ErrContentNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("content not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get ticket types"))
			return
		}

		log.Info("ticket types retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, TicketTypesResponse{
			Response:    response.OK(),
			TicketTypes: list,
		})
	}
}
