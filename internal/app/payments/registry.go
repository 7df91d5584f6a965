package payments

import "context"

// Strategy executes one payment attempt against one backend and returns a
// normalized Response. Implementations must be stateless or internally
// thread-safe: the orchestrator invokes the same instance from concurrent
// requests with no coordination.
type Strategy interface {
	Attempt(ctx context.Context, req *Request) Response
}

// Registry is an immutable mapping from payment-type tag to strategy. It is
// built once at process start and holds no per-request state, so concurrent
// reads need no synchronization.
type Registry struct {
	byType map[string]Strategy
}

// NewRegistry builds the registry from the fixed, known set of strategy
// variants.
func NewRegistry(gateway, crypto Strategy) *Registry {
	return &Registry{
		byType: map[string]Strategy{
			TypeGateway: gateway,
			TypeCrypto:  crypto,
		},
	}
}

// Resolve returns the strategy registered for the given payment-type tag.
// Unknown tags resolve to (nil, false); the orchestrator turns that into an
// unsupported-type outcome rather than a crash.
func (r *Registry) Resolve(paymentType string) (Strategy, bool) {
	s, ok := r.byType[paymentType]
	return s, ok
}
