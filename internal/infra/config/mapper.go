package config

import (
	"fmt"
	"strings"

	"github.com/eroom8/Java-document-sorter/internal/domain"
)

// MapConfig applies parsed values on top of domain.DefaultConfig and validates them.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	y := yc.Recsort

	if v := strings.TrimSpace(y.Defaults.Input); v != "" {
		cfg.Defaults.Input = v
	}
	if v := strings.TrimSpace(y.Defaults.Output); v != "" {
		cfg.Defaults.Output = v
	}
	if y.Defaults.Count != nil {
		if *y.Defaults.Count <= 0 {
			return domain.Config{}, invalidField(path, "defaults.count", fmt.Sprintf("count must be positive, got %d", *y.Defaults.Count))
		}
		cfg.Defaults.Count = *y.Defaults.Count
	}
	if v := strings.TrimSpace(y.Defaults.Mode); v != "" {
		if _, err := domain.ParseMode(v); err != nil {
			return domain.Config{}, invalidField(path, "defaults.mode", fmt.Sprintf("unknown mode %q", v))
		}
		cfg.Defaults.Mode = v
	}
	if y.Defaults.Exact != nil {
		cfg.Defaults.Exact = *y.Defaults.Exact
	}

	if y.Reports.Enabled != nil {
		cfg.Reports.Enabled = *y.Reports.Enabled
	}
	if v := strings.TrimSpace(y.Reports.Dir); v != "" {
		cfg.Reports.Dir = v
	}

	if y.Logging.Enabled != nil {
		cfg.Logging.Enabled = *y.Logging.Enabled
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
