package payments

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/payments/models"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// CreatePaymentRequest без amount берётся стоимость сессии
type CreatePaymentRequest struct {
	SessionID int64            `json:"session_id"`
	Amount    *decimal.Decimal `json:"amount"`
	MethodID  int64            `json:"method_id"`
	Time      *types.NaiveTime `json:"time"`
}

type UpdatePaymentRequest struct {
	SessionID *int64           `json:"session_id"`
	Amount    *decimal.Decimal `json:"amount"`
	MethodID  *int64           `json:"method_id"`
	Time      *types.NaiveTime `json:"time"`
}

type PaymentResponse struct {
	ID        int64           `json:"id"`
	SessionID int64           `json:"session_id"`
	Amount    json.Number     `json:"amount"`
	MethodID  int64           `json:"method_id"`
	Time      types.NaiveTime `json:"time"`
	CreatedAt types.NaiveTime `json:"created_at"`
}

func (r *CreatePaymentRequest) toService() *models.CreatePaymentRequest {
	return &models.CreatePaymentRequest{
		SessionID: r.SessionID,
		Amount:    r.Amount,
		MethodID:  r.MethodID,
		Time:      r.Time.Ptr(),
	}
}

func (r *UpdatePaymentRequest) toService() *models.UpdatePaymentRequest {
	return &models.UpdatePaymentRequest{
		SessionID: r.SessionID,
		Amount:    r.Amount,
		MethodID:  r.MethodID,
		Time:      r.Time.Ptr(),
	}
}

func fromDomain(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		SessionID: p.SessionID,
		Amount:    handlers.Money(p.Amount),
		MethodID:  p.MethodID,
		Time:      types.NewNaiveTime(p.Time),
		CreatedAt: types.NewNaiveTime(p.CreatedAt),
	}
}
