package createContent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"photizon/internal/lib/api/response"
	"photizon/internal/lib/logger/sl"
	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ContentRequest struct {
	ChurchID     int    `json:"church_id" validate:"required"`
	Type         string `json:"type" validate:"required,oneof=ARTICLE AUDIO EVENT VIDEO POST BOOK"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	DeliveryType string `json:"delivery_type" validate:"omitempty,oneof=DIGITAL PHYSICAL"`

	IsPaid   bool             `json:"is_paid"`
	Price    *decimal.Decimal `json:"price"`
	Currency string           `json:"currency"`

	StartAt  *time.Time `json:"start_at"`
	EndAt    *time.Time `json:"end_at"`
	Location string     `json:"location"`

	Capacity *int `json:"capacity" validate:"omitempty,min=0"`

	ClassicPrice    *decimal.Decimal `json:"classic_price"`
	ClassicQuantity *int             `json:"classic_quantity" validate:"omitempty,min=0"`
	VIPPrice        *decimal.Decimal `json:"vip_price"`
	VIPQuantity     *int             `json:"vip_quantity" validate:"omitempty,min=0"`
	PremiumPrice    *decimal.Decimal `json:"premium_price"`
	PremiumQuantity *int             `json:"premium_quantity" validate:"omitempty,min=0"`

	Published *bool `json:"published"`
}

type ContentResponse struct {
	response.Response
	ContentID int `json:"content_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentCreator
type ContentCreator interface {
	CreateContent(content models.Content) (int, error)
}

func New(log *slog.Logger, contents ContentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.createContent.New"

		log = log.With(slog.String("op", op))

		var req ContentRequest

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

		content := models.Content{
			ChurchID:        req.ChurchID,
			Type:            models.ContentType(req.Type),
			Title:           req.Title,
			Description:     req.Description,
			DeliveryType:    models.DeliveryDigital,
			IsPaid:          req.IsPaid,
			Price:           req.Price,
			Currency:        "XAF",
			StartAt:         req.StartAt,
			EndAt:           req.EndAt,
			Location:        req.Location,
			Capacity:        req.Capacity,
			ClassicPrice:    req.ClassicPrice,
			ClassicQuantity: req.ClassicQuantity,
			VIPPrice:        req.VIPPrice,
			VIPQuantity:     req.VIPQuantity,
			PremiumPrice:    req.PremiumPrice,
			PremiumQuantity: req.PremiumQuantity,
			Published:       true,
		}
		if req.DeliveryType != "" {
			content.DeliveryType = models.DeliveryType(req.DeliveryType)
		}
		if req.Currency != "" {
			content.Currency = req.Currency
		}
		if req.Published != nil {
			content.Published = *req.Published
		}

		contentID, err := contents.CreateContent(content)
		if err != nil {
			log.Error("failed to create content", sl.Err(err))

			if errors.Is(err, storage.ErrCapacityExceeded) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("tier quantities exceed event capacity"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create content"))
			return
		}

		log.Info("content created", slog.Int("id", contentID))

		responseOK(w, r, contentID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, contentID int) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, ContentResponse{
		Response:  response.OK(),
		ContentID: contentID,
	})
}
