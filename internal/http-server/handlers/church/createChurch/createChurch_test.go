package createChurch_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"photizon/internal/http-server/handlers/church/createChurch"
	"photizon/internal/http-server/handlers/church/createChurch/mocks"
	"photizon/internal/lib/logger/handlers/slogdiscard"
	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateChurchHandler(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		mockResult *models.Church
		mockError  error
		respCode   int
		respError  string
	}{
		{
			name: "Success",
			body: `{"title": "Grace Chapel", "city": "Douala", "country": "Cameroon", "owner_id": "owner-1"}`,
			mockResult: &models.Church{
				ID:      1,
				Code:    1,
				Title:   "Grace Chapel",
				City:    "Douala",
				Country: "Cameroon",
				OwnerID: "owner-1",
			},
			respCode: http.StatusCreated,
		},
		{
			name:      "Missing title",
			body:      `{"owner_id": "owner-1"}`,
			respCode:  http.StatusBadRequest,
			respError: "field Title is a required field",
		},
		{
			name:      "Missing owner",
			body:      `{"title": "Grace Chapel"}`,
			respCode:  http.StatusBadRequest,
			respError: "field OwnerID is a required field",
		},
		{
			name:      "Code allocation exhausted",
			body:      `{"title": "Grace Chapel", "owner_id": "owner-1"}`,
			mockError: storage.ErrCodeRetryExceeded,
			respCode:  http.StatusConflict,
			respError: "failed to allocate church code",
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creatorMock := mocks.NewChurchCreator(t)

			if tc.mockResult != nil || tc.mockError != nil {
				creatorMock.On("CreateChurch", mock.AnythingOfType("models.Church")).
					Return(tc.mockResult, tc.mockError).
					Once()
			}

			handler := createChurch.New(slogdiscard.NewDiscardLogger(), creatorMock)

			req, err := http.NewRequest(http.MethodPost, "/churches", bytes.NewReader([]byte(tc.body)))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.respCode, rr.Code)

			var resp createChurch.ChurchResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			require.Equal(t, tc.respError, resp.Error)

			if tc.mockResult != nil {
				require.NotNil(t, resp.Church)
				assert.Equal(t, tc.mockResult.Code, resp.Church.Code)
				assert.Equal(t, tc.mockResult.Title, resp.Church.Title)
			}
		})
	}
}
