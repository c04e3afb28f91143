package getChurch_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"photizon/internal/http-server/handlers/church/getChurch"
	"photizon/internal/http-server/handlers/church/getChurch/mocks"
	"photizon/internal/lib/logger/handlers/slogdiscard"
	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetChurchHandler(t *testing.T) {
	cases := []struct {
		name       string
		churchID   string
		mockResult *models.Church
		mockError  error
		respCode   int
		respError  string
	}{
		{
			name:     "Success",
			churchID: "1",
			mockResult: &models.Church{
				ID:      1,
				Code:    42,
				Title:   "Grace Chapel",
				City:    "Douala",
				Country: "Cameroon",
				OwnerID: "owner-1",
			},
			respCode: http.StatusOK,
		},
		{
			name:      "Not found",
			churchID:  "99",
			mockError: storage.ErrChurchNotFound,
			respCode:  http.StatusNotFound,
			respError: "church not found",
		},
		{
			name:      "Invalid id",
			churchID:  "abc",
			respCode:  http.StatusBadRequest,
			respError: "invalid church id format",
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getterMock := mocks.NewChurchGetter(t)

			if tc.mockResult != nil || tc.mockError != nil {
				getterMock.On("GetChurch", mock.AnythingOfType("int")).
					Return(tc.mockResult, tc.mockError).
					Once()
			}

			handler := getChurch.New(slogdiscard.NewDiscardLogger(), getterMock)

			router := chi.NewRouter()
			router.Get("/churches/{id}", handler)

			req, err := http.NewRequest(http.MethodGet, "/churches/"+tc.churchID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, tc.respCode, rr.Code)

			var resp getChurch.ChurchResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			require.Equal(t, tc.respError, resp.Error)

			if tc.mockResult != nil {
				require.NotNil(t, resp.Church)
				assert.Equal(t, tc.mockResult.Code, resp.Church.Code)
			}
		})
	}
}
