package createChurch

import (
	"errors"
	"log/slog"
	"net/http"

	"photizon/internal/lib/api/response"
	"photizon/internal/lib/logger/sl"
	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ChurchRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	City        string `json:"city"`
	Country     string `json:"country"`
	OwnerID     string `json:"owner_id" validate:"required"`
}

type ChurchResponse struct {
	response.Response
	Church *models.Church `json:"church"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChurchCreator
type ChurchCreator interface {
	CreateChurch(church models.Church) (*models.Church, error)
}

func New(log *slog.Logger, churches ChurchCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.church.createChurch.New"

		log = log.With(slog.String("op", op))

		var req ChurchRequest

		err := render.DecodeJSON(r.Body, &req)
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

		church, err := churches.CreateChurch(models.Church{
			Title:       req.Title,
			Description: req.Description,
			City:        req.City,
			Country:     req.Country,
			OwnerID:     req.OwnerID,
		})
		if err != nil {
			log.Error("failed to create church", sl.Err(err))

			if errors.Is(err, storage.ErrCodeRetryExceeded) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("failed to allocate church code"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create church"))
			return
		}

		log.Info("church created",
			slog.Int("church_id", church.ID),
			slog.Int("code", church.Code),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, ChurchResponse{
			Response: response.OK(),
			Church:   church,
		})
	}
}
