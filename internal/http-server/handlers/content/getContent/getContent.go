package getContent

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

type ContentResponse struct {
	response.Response
	Content     *models.Content     `json:"content"`
	TicketTypes []models.TicketType `json:"ticket_types,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentGetter
type ContentGetter interface {
	GetContent(id int) (*models.Content, error)
	GetTicketTypes(contentID int) ([]models.TicketType, error)
}

func New(log *slog.Logger, contents ContentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.getContent.New"

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

		content, err := contents.GetContent(contentID)
		if err != nil {
			log.Error("failed to get content", sl.Err(err))

			if errors.Is(err, storage.ErrContentNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("content not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get content"))
			return
		}

		var ticketTypes []models.TicketType
		if content.IsEvent() {
			ticketTypes, err = contents.GetTicketTypes(contentID)
			if err != nil {
				log.Error("failed to get ticket types", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get content"))
				return
			}
		}

		log.Info("content retrieved", slog.Int("content_id", contentID))

		render.JSON(w, r, ContentResponse{
			Response:    response.OK(),
			Content:     content,
			TicketTypes: ticketTypes,
		})
	}
}
