package bigcache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	p, err := New(ctx, Config{LifeWindow: time.Minute, Shards: 16, MaxEntrySize: 64})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(ctx) })

	if _, ok, err := p.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}

	val := []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}
	if ok, err := p.Set(ctx, "k", val, 0, 0); !ok || err != nil {
		t.Fatalf("Set ok=%v err=%v", ok, err)
	}
	got, ok, err := p.Get(ctx, "k")
	if err != nil || !ok || !bytes.Equal(got, val) {
		t.Fatalf("Get = % x, %v, %v", got, ok, err)
	}

	if err := p.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	// deleting a missing key is not an error
	if err := p.Del(ctx, "k"); err != nil {
		t.Fatalf("second Del: %v", err)
	}
}

func TestSetOversizedEntryIsNotOK(t *testing.T) {
	ctx := context.Background()
	// 1 MB split over 2 shards: an entry above 512 KB cannot fit a shard
	p, err := New(ctx, Config{LifeWindow: time.Minute, Shards: 2, MaxEntrySize: 64, HardMaxCacheSizeMB: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(ctx) })

	ok, err := p.Set(ctx, "big", make([]byte, 1<<20), 0, 0)
	if err == nil || ok {
		t.Fatalf("expected ok=false with error, got ok=%v err=%v", ok, err)
	}
	if _, hit, _ := p.Get(ctx, "big"); hit {
		t.Fatalf("oversized entry should not be stored")
	}
}
