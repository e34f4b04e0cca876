package services

import "context"

// Service is a single use case: the scheduler, the HTTP handlers and the
// decorators all drive use cases through this one shape.
type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}
