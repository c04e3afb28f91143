package getChurch

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

type ChurchResponse struct {
	response.Response
	Church *models.Church `json:"church"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChurchGetter
type ChurchGetter interface {
	GetChurch(id int) (*models.Church, error)
}

func New(log *slog.Logger, churches ChurchGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.church.getChurch.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("church id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("church id is required"))
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			log.Error("invalid church id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid church id format"))
			return
		}

		church, err := churches.GetChurch(id)
		if err != nil {
			if errors.Is(err, storage.ErrChurchNotFound) {
				log.Info("church not found", slog.Int("church_id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("church not found"))
				return
			}

			log.Error("failed to get church", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get church"))
			return
		}

		log.Info("church retrieved", slog.Int("church_id", church.ID))

		render.JSON(w, r, ChurchResponse{
			Response: response.OK(),
			Church:   church,
		})
	}
}
