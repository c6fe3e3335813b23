package update_parking_session

import (
	"context"

	updateSession "github.com/m04kA/SMC-ParkingService/internal/usecase/update_parking_session"
)

type UpdateSessionUseCase interface {
	Execute(ctx context.Context, req *updateSession.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
