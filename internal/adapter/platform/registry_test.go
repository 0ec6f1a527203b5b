package platform

import (
	"testing"
	"time"

	"adforge/internal/core/domain"
)

func TestRegistryDispatch(t *testing.T) {
	r := NewRegistry()
	meta := NewMeta("https://example.com", time.Second)
	r.Register(domain.PlatformMeta, meta)

	got, err := r.Adapter(domain.PlatformMeta)
	if err != nil {
		t.Fatalf("Adapter: %v", err)
	}
	if got != meta {
		t.Fatal("wrong adapter returned")
	}

	if _, err = r.Adapter(domain.PlatformTikTok); err == nil {
		t.Fatal("expected error for unregistered platform")
	}
}
