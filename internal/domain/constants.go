package domain

import "time"

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

// Time format constants
const (
	DateFormat        = "2006-01-02"          // YYYY-MM-DD
	PeriodStartFormat = "2006-01-02T15:04:05" // начало недели/месяца
)

// Business validation constants
const (
	MaxSpaceNumberLength  = 10
	MaxLicensePlateLength = 20
	MaxNameLength         = 100
	MaxPhoneLength        = 20
	MaxBrandLength        = 50 // также для модели
	MaxColorLength        = 30
)

// MoneyPlaces число знаков после запятой для денежных сумм
const MoneyPlaces = 2
