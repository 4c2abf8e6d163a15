package update

import (
	"os"
	"strconv"
	"strings"

	"github.com/sandeepkv93/listd/internal/model"
)

type RuntimeConfig struct {
	DefaultPriority model.Priority
	ConfirmClear    bool
	ListHeight      int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DefaultPriority: model.PriorityMedium,
		ConfirmClear:    true,
		ListHeight:      12,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if p, ok := model.ParsePriority(os.Getenv("LISTD_DEFAULT_PRIORITY")); ok {
		cfg.DefaultPriority = p
	}
	if v, ok := getEnvBool("LISTD_CONFIRM_CLEAR"); ok {
		cfg.ConfirmClear = v
	}
	if v, ok := getEnvInt("LISTD_LIST_HEIGHT"); ok && v > 0 {
		cfg.ListHeight = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
