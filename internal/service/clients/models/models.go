package models

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// CreateClientRequest запрос на создание клиента
type CreateClientRequest struct {
	Name    string
	Surname string
	Phone   string
}

// UpdateClientRequest все поля опциональны
type UpdateClientRequest struct {
	Name    *string
	Surname *string
	Phone   *string
}

func (r *CreateClientRequest) ToDomain() *domain.Client {
	return &domain.Client{Name: r.Name, Surname: r.Surname, Phone: r.Phone}
}

// ApplyTo переносит переданные поля в клиента
func (r *UpdateClientRequest) ApplyTo(c *domain.Client) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Surname != nil {
		c.Surname = *r.Surname
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
}
