package payments_test

import (
	"context"
	"testing"

	"github.com/wanderplan/travel-planner-api/internal/app/payments"
)

type stubStrategy struct {
	resp payments.Response
}

func (s stubStrategy) Attempt(_ context.Context, _ *payments.Request) payments.Response {
	return s.resp
}

func TestRegistry_ResolveKnownTypes(t *testing.T) {
	t.Parallel()

	gateway := stubStrategy{resp: payments.Response{Status: "succeeded", Success: true}}
	crypto := stubStrategy{resp: payments.Failed("nope")}
	reg := payments.NewRegistry(gateway, crypto)

	if s, ok := reg.Resolve(payments.TypeGateway); !ok || s == nil {
		t.Fatalf("gateway not resolved")
	}
	if s, ok := reg.Resolve(payments.TypeCrypto); !ok || s == nil {
		t.Fatalf("crypto not resolved")
	}
}

func TestRegistry_ResolveUnknownType(t *testing.T) {
	t.Parallel()

	reg := payments.NewRegistry(stubStrategy{}, stubStrategy{})
	if _, ok := reg.Resolve("bitcoin"); ok {
		t.Fatalf("unexpected strategy for unknown tag")
	}
	if _, ok := reg.Resolve(""); ok {
		t.Fatalf("unexpected strategy for empty tag")
	}
}
