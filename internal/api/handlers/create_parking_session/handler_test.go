package create_parking_session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createSession "github.com/m04kA/SMC-ParkingService/internal/usecase/create_parking_session"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createSession.Request) (*createSession.Response, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*createSession.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle_Created(t *testing.T) {
	timeIn := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	timeOut := timeIn.Add(90 * time.Minute)

	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createSession.Request) bool {
		// смещение +03:00 отбрасывается, настенное время сохраняется
		return req.TimeIn.Equal(timeIn) && req.TimeOut.Equal(timeOut) && req.TariffID == 3
	})).Return(&createSession.Response{
		ID:        10,
		VehicleID: 1,
		SpaceID:   2,
		TariffID:  3,
		TimeIn:    timeIn,
		TimeOut:   &timeOut,
		TotalCost: ptr.Ptr(decimal.NewFromInt(200)),
		CreatedAt: timeIn,
	}, nil)

	body := `{"vehicle_id":1,"space_id":2,"tariff_id":3,"time_in":"2024-05-01T10:00:00+03:00","time_out":"2024-05-01T11:30:00"}`
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/parking-sessions", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(10), got["id"])
	assert.Equal(t, "2024-05-01T10:00:00", got["time_in"])
	assert.Equal(t, "2024-05-01T11:30:00", got["time_out"])
	assert.Equal(t, float64(200), got["total_cost"])
	assert.Contains(t, rec.Body.String(), `"total_cost":200.00`)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "malformed json", body: `{"vehicle_id":`, wantStatus: http.StatusBadRequest},
		{name: "bad time", body: `{"vehicle_id":1,"space_id":1,"tariff_id":1,"time_in":"yesterday"}`, wantStatus: http.StatusBadRequest},
		{name: "invalid input", body: `{"space_id":1,"tariff_id":1,"time_in":"2024-05-01T10:00:00"}`, ucErr: createSession.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "invalid interval", body: `{"vehicle_id":1,"space_id":1,"tariff_id":1,"time_in":"2024-05-01T10:00:00"}`, ucErr: createSession.ErrInvalidInterval, wantStatus: http.StatusBadRequest},
		{name: "tariff not found", body: `{"vehicle_id":1,"space_id":1,"tariff_id":99,"time_in":"2024-05-01T10:00:00"}`, ucErr: createSession.ErrTariffNotFound, wantStatus: http.StatusNotFound},
		{name: "reference not found", body: `{"vehicle_id":9,"space_id":1,"tariff_id":1,"time_in":"2024-05-01T10:00:00"}`, ucErr: createSession.ErrReferenceNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", body: `{"vehicle_id":1,"space_id":1,"tariff_id":1,"time_in":"2024-05-01T10:00:00"}`, ucErr: createSession.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/parking-sessions", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.ucErr == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
