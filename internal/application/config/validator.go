package config

import (
	"fmt"
	"strings"

	"github.com/doeshing/dpc-go/internal/domain"
	"github.com/doeshing/dpc-go/internal/presentation"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validatePreferences(cfg.Preferences); err != nil {
		return err
	}
	return validateHistory(cfg.History)
}

func validatePreferences(prefs domain.Preferences) error {
	locale := strings.ToLower(prefs.Locale)
	if locale != "" && !contains(presentation.Locales(), locale) {
		return fmt.Errorf("preferences.locale must be one of %s, got %s",
			strings.Join(presentation.Locales(), "|"), prefs.Locale)
	}
	switch strings.ToLower(prefs.OutputFormat) {
	case "", domain.FormatHuman, domain.FormatJSON, domain.FormatYAML, domain.FormatHTML:
	default:
		return fmt.Errorf("preferences.output_format must be human|json|yaml|html, got %s", prefs.OutputFormat)
	}
	switch strings.ToLower(prefs.Color) {
	case "", domain.ColorAuto, domain.ColorAlways, domain.ColorNever:
	default:
		return fmt.Errorf("preferences.color must be auto|always|never, got %s", prefs.Color)
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	if history.Enabled && strings.TrimSpace(history.Path) == "" {
		return fmt.Errorf("history.path must be set when history is enabled")
	}
	return nil
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
