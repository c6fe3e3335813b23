package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tariff describes hourly pricing. PricePerDay is stored but does not
// take part in cost calculation.
type Tariff struct {
	ID           int64
	Name         string
	PricePerHour decimal.Decimal
	PricePerDay  decimal.Decimal
	CreatedAt    time.Time
}

// ParkingSpace is a numbered place for one vehicle of the given type
type ParkingSpace struct {
	ID        int64
	Number    string
	TypeID    int64
	CreatedAt time.Time
}

type Client struct {
	ID        int64
	Name      string
	Surname   string
	Phone     string
	CreatedAt time.Time
}

type Vehicle struct {
	ID           int64
	Brand        string
	Model        string
	LicensePlate string
	Color        string
	TypeID       int64
	ClientID     int64
}

// Payment for a parking session
type Payment struct {
	ID        int64
	SessionID int64
	Amount    decimal.Decimal
	MethodID  int64
	Time      time.Time
	CreatedAt time.Time
}

// VehicleType справочник типов транспорта
type VehicleType struct {
	ID   int64
	Name string
}

// PaymentMethod справочник способов оплаты
type PaymentMethod struct {
	ID   int64
	Name string
}
