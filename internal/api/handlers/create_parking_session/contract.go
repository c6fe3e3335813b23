package create_parking_session

import (
	"context"

	createSession "github.com/m04kA/SMC-ParkingService/internal/usecase/create_parking_session"
)

type CreateSessionUseCase interface {
	Execute(ctx context.Context, req *createSession.Request) (*createSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
