package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	if err := c.Set(ctx, "current:new-delhi", []byte(`{"aqi":182}`), time.Minute); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, err := c.Get(ctx, "current:new-delhi")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != `{"aqi":182}` {
		t.Errorf("Get() = %s", got)
	}
}

func TestMemoryCache_MissOnAbsentKey(t *testing.T) {
	c := NewMemory()
	if _, err := c.Get(context.Background(), "nope"); !errors.Is(err, ErrMiss) {
		t.Errorf("Get() = %v, want ErrMiss", err)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	if err := c.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Errorf("Get() after expiry = %v, want ErrMiss", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Errorf("Get() after delete = %v, want ErrMiss", err)
	}
}

func TestMemoryCache_ValueIsCopied(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	buf := []byte("original")
	if err := c.Set(ctx, "k", buf, time.Minute); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	buf[0] = 'X'

	got, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != "original" {
		t.Errorf("cached value mutated: %s", got)
	}
}
