package update

import (
	"testing"

	"github.com/sandeepkv93/listd/internal/model"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.DefaultPriority != model.PriorityMedium {
		t.Fatalf("unexpected default priority: %+v", cfg)
	}
	if !cfg.ConfirmClear {
		t.Fatal("expected confirm clear on by default")
	}
	if cfg.ListHeight != 12 {
		t.Fatalf("unexpected list height default: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("LISTD_DEFAULT_PRIORITY", "high")
	t.Setenv("LISTD_CONFIRM_CLEAR", "off")
	t.Setenv("LISTD_LIST_HEIGHT", "20")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DefaultPriority != model.PriorityHigh {
		t.Fatalf("unexpected priority from env: %+v", cfg)
	}
	if cfg.ConfirmClear {
		t.Fatal("expected confirm clear off from env")
	}
	if cfg.ListHeight != 20 {
		t.Fatalf("unexpected list height from env: %+v", cfg)
	}
}

func TestRuntimeConfigIgnoresGarbageEnv(t *testing.T) {
	t.Setenv("LISTD_DEFAULT_PRIORITY", "critical")
	t.Setenv("LISTD_CONFIRM_CLEAR", "maybe")
	t.Setenv("LISTD_LIST_HEIGHT", "tall")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg != DefaultRuntimeConfig() {
		t.Fatalf("expected defaults preserved, got %+v", cfg)
	}
}
