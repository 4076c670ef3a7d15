package driving

import "context"

// The three use-case call shapes. Different operations need different
// signatures without conditional logic at call sites, so each shape is
// its own contract.
//
// Use cases are stateless between calls: an implementation holds only
// the dependencies injected at construction and caches nothing. Errors
// from the underlying layers propagate unmodified; a use case never
// wraps or swallows them.

// UseCase takes one params value and returns one result.
type UseCase[P any, R any] interface {
	Call(ctx context.Context, params P) (R, error)
}

// VoidUseCase takes params and produces only a side effect.
type VoidUseCase[P any] interface {
	Call(ctx context.Context, params P) error
}

// NoParamsUseCase returns a result without input.
type NoParamsUseCase[R any] interface {
	Call(ctx context.Context) (R, error)
}
