package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/ctxmeta"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := ctxmeta.WithRequestID(context.Background(), "req-42")
	got, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok || got != "req-42" {
		t.Fatalf("want req-42, got %q ok=%v", got, ok)
	}
}

func TestRequestID_EmptyIsNoop(t *testing.T) {
	ctx := ctxmeta.WithRequestID(context.Background(), "")
	if _, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		t.Fatal("empty request id must not be stored")
	}
}

func TestRequestID_MissingFromBareContext(t *testing.T) {
	if _, ok := ctxmeta.RequestIDFromContext(context.Background()); ok {
		t.Fatal("bare context should have no request id")
	}
}
