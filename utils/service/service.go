package service

import (
	"context"
)

// Service is a component with a background routine bound to a context.
type Service interface {
	Start(ctx context.Context) error
	IsRunning() bool
	Serve()
	Stop()
}

// StartStopCallback is implemented by the component embedding SimpleService.
// OnStart receives a context that is cancelled when the service stops.
type StartStopCallback interface {
	OnStart(ctx context.Context) error
	OnStop()
}
