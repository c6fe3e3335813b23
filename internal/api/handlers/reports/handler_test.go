package reports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reportsService "github.com/m04kA/SMC-ParkingService/internal/service/reports"
	"github.com/m04kA/SMC-ParkingService/internal/service/reports/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Revenue(ctx context.Context, req models.PeriodRequest) (*models.RevenueReport, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.RevenueReport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) SessionsCount(ctx context.Context, req models.PeriodRequest) (*models.SessionsReport, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.SessionsReport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) AverageCheck(ctx context.Context, req models.PeriodRequest) (*models.AverageCheckReport, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.AverageCheckReport), args.Error(1)
	}
	return nil, args.Error(1)
}

var (
	periodStart = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)
)

func TestRevenue(t *testing.T) {
	svc := new(mockService)
	svc.On("Revenue", mock.Anything, mock.MatchedBy(func(req models.PeriodRequest) bool {
		return req.Start != nil && req.Start.Equal(periodStart) && req.End == nil
	})).Return(&models.RevenueReport{
		TotalRevenue: decimal.RequireFromString("1500.5"),
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Revenue(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reports/revenue?start_date=2024-05-01", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"total_revenue": 1500.50,
		"period_start": "2024-05-01T00:00:00",
		"period_end": "2024-05-31T23:59:59"
	}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestSessions_ZeroStart(t *testing.T) {
	svc := new(mockService)
	svc.On("SessionsCount", mock.Anything, models.PeriodRequest{}).Return(&models.SessionsReport{
		TotalSessions: 4,
		PeriodEnd:     periodEnd,
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Sessions(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reports/sessions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"period_start":"0001-01-01T00:00:00"`)
	assert.Contains(t, rec.Body.String(), `"total_sessions":4`)
}

func TestAverageCheck_Unrounded(t *testing.T) {
	svc := new(mockService)
	svc.On("AverageCheck", mock.Anything, mock.Anything).Return(&models.AverageCheckReport{
		AverageCheck: decimal.NewFromInt(100).Div(decimal.NewFromInt(3)),
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).AverageCheck(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reports/average-check", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"average_check":33.3333333333333333`)
}

func TestErrors(t *testing.T) {
	t.Run("bad date", func(t *testing.T) {
		svc := new(mockService)
		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Revenue(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reports/revenue?end_date=tomorrow", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Revenue", mock.Anything, mock.Anything)
	})

	t.Run("inverted period", func(t *testing.T) {
		svc := new(mockService)
		svc.On("SessionsCount", mock.Anything, mock.Anything).Return(nil, reportsService.ErrInvalidPeriod)

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Sessions(rec, httptest.NewRequest(http.MethodGet,
			"/api/v1/reports/sessions?start_date=2024-06-01&end_date=2024-05-01", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("storage", func(t *testing.T) {
		svc := new(mockService)
		svc.On("AverageCheck", mock.Anything, mock.Anything).Return(nil, reportsService.ErrInternal)

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).AverageCheck(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reports/average-check", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
