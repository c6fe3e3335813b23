package update_parking_session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	updateSession "github.com/m04kA/SMC-ParkingService/internal/usecase/update_parking_session"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *updateSession.Request) error {
	return m.Called(ctx, req).Error(0)
}

func newRequest(id, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPut, "/api/v1/parking-sessions/"+id, strings.NewReader(body))
	return mux.SetURLVars(r, map[string]string{"id": id})
}

func TestHandle_NoContent(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *updateSession.Request) bool {
		return req.ID == 5 &&
			req.TimeOut != nil &&
			req.TotalCost.Equal(decimal.RequireFromString("120.5")) &&
			req.VehicleID == nil &&
			req.OperatorID == ""
	})).Return(nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, newRequest("5", `{"time_out":"2024-05-01T12:00:00","total_cost":120.5}`))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "bad id", id: "x", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "bad body", id: "1", body: `[]`, wantStatus: http.StatusBadRequest},
		{name: "not found", id: "1", body: `{}`, ucErr: updateSession.ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{name: "unknown reference", id: "1", body: `{"tariff_id":42}`, ucErr: updateSession.ErrReferenceNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid input", id: "1", body: `{"total_cost":-1}`, ucErr: updateSession.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", id: "1", body: `{}`, ucErr: updateSession.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(tt.ucErr)
			}

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, newRequest(tt.id, tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
