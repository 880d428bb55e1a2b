package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emrek/campushub/internal/app/store"
)

func TestAuditRecentNewestFirstAndLimited(t *testing.T) {
	svc := NewAuditService(store.NewMemoryStore(), zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := svc.Append(ctx, "admin", fmt.Sprintf("action_%d", i), "user", fmt.Sprintf("target_%d", i)); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	limited, err := svc.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(limited) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(limited))
	}

	all, _ := svc.Recent(ctx, 0)
	if len(all) != 5 {
		t.Fatalf("expected all 5 entries with no limit, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Timestamp < all[i].Timestamp {
			t.Fatal("entries should be newest first")
		}
	}
}
