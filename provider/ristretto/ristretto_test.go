package ristretto

import (
	"bytes"
	"context"
	"testing"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error on zero config")
	}
	if _, err := New(Config{NumCounters: 100, MaxCost: 0}); err == nil {
		t.Fatalf("expected error on zero MaxCost")
	}
}

func TestSetWaitGetDel(t *testing.T) {
	ctx := context.Background()
	p, err := New(Config{NumCounters: 1000, MaxCost: 1 << 20})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(ctx) })

	val := []byte{0, 0, 0x80, 0x3F}
	ok, err := p.Set(ctx, "k", val, int64(len(val)), 0)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !ok {
		t.Skip("ristretto dropped the write under contention")
	}
	p.Wait()

	got, hit, err := p.Get(ctx, "k")
	if err != nil || !hit || !bytes.Equal(got, val) {
		t.Fatalf("Get = % x, %v, %v", got, hit, err)
	}
	if err := p.Del(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := p.Get(ctx, "k"); hit {
		t.Fatalf("expected miss after Del")
	}
}
