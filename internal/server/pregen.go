package server

import (
	"context"

	"cricket-bingo-service/internal/pregen"
)

// Pregenerator defines the minimal pregeneration behavior needed by the server.
type Pregenerator interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() pregen.Status
}
