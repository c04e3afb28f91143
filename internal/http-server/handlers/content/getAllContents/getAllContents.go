package getAllContents

import (
	"log/slog"
	"net/http"

	"photizon/internal/lib/api/response"
	"photizon/internal/lib/logger/sl"
	"photizon/internal/models"

	"github.com/go-chi/render"
)

type ContentsResponse struct {
	response.Response
	Contents []models.Content `json:"contents"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentsGetter
type ContentsGetter interface {
	GetAllContents() ([]models.Content, error)
}

func New(log *slog.Logger, contents ContentsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.getAllContents.New"

		log = log.With(slog.String("op", op))

		list, err := contents.GetAllContents()
		if err != nil {
			log.Error("failed to get contents", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get contents"))
			return
		}

		log.Info("contents retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, ContentsResponse{
			Response: response.OK(),
			Contents: list,
		})
	}
}
