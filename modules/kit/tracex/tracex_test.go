package tracex

import (
	"context"
	"testing"
)

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "t-1")
	if got, ok := TraceIDFrom(ctx); !ok || got != "t-1" {
		t.Fatalf("期望 TraceIDFrom round-trip 成功，got=%q ok=%v", got, ok)
	}
}

func TestEnsure_已有则复用(t *testing.T) {
	ctx := WithTraceID(context.Background(), "upstream")
	_, tid := Ensure(ctx)
	if tid != "upstream" {
		t.Fatalf("期望复用上游 trace_id, got=%q", tid)
	}
}

func TestEnsure_没有则生成(t *testing.T) {
	ctx, tid := Ensure(context.Background())
	if len(tid) != 32 {
		t.Fatalf("期望生成 32 位 hex trace_id, got=%q", tid)
	}
	if got, _ := TraceIDFrom(ctx); got != tid {
		t.Fatalf("期望 ctx 中写入新 trace_id, got=%q want=%q", got, tid)
	}
}
