package clients

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/clients/models"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

type CreateClientRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Phone   *string `json:"phone"`
}

type ClientResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Surname   string          `json:"surname"`
	Phone     string          `json:"phone"`
	CreatedAt types.NaiveTime `json:"created_at"`
}

func (r *CreateClientRequest) toService() *models.CreateClientRequest {
	return &models.CreateClientRequest{Name: r.Name, Surname: r.Surname, Phone: r.Phone}
}

func (r *UpdateClientRequest) toService() *models.UpdateClientRequest {
	return &models.UpdateClientRequest{Name: r.Name, Surname: r.Surname, Phone: r.Phone}
}

func fromDomain(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Surname:   c.Surname,
		Phone:     c.Phone,
		CreatedAt: types.NewNaiveTime(c.CreatedAt),
	}
}
