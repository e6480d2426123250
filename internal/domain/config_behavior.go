package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// settableKeys lists the dotted keys accepted by Get and Set.
var settableKeys = map[string]struct{}{
	"preferences.locale":            {},
	"preferences.output_format":     {},
	"preferences.copy_to_clipboard": {},
	"preferences.color":             {},
	"history.enabled":               {},
	"history.path":                  {},
}

// ConfigKeys returns the dotted keys accepted by Get and Set, sorted.
func ConfigKeys() []string {
	keys := make([]string, 0, len(settableKeys))
	for key := range settableKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the string form of a dotted configuration key.
func (c *Config) Get(key string) (string, error) {
	switch strings.ToLower(key) {
	case "preferences.locale":
		return c.Preferences.Locale, nil
	case "preferences.output_format":
		return c.Preferences.OutputFormat, nil
	case "preferences.copy_to_clipboard":
		return strconv.FormatBool(c.Preferences.CopyToClipboard), nil
	case "preferences.color":
		return c.Preferences.Color, nil
	case "history.enabled":
		return strconv.FormatBool(c.History.Enabled), nil
	case "history.path":
		return c.History.Path, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// Set assigns a dotted configuration key from its string form.
// Values are not validated beyond their type; run the config validator
// before persisting.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "preferences.locale":
		c.Preferences.Locale = strings.ToLower(value)
	case "preferences.output_format":
		c.Preferences.OutputFormat = strings.ToLower(value)
	case "preferences.copy_to_clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false: %w", key, err)
		}
		c.Preferences.CopyToClipboard = b
	case "preferences.color":
		c.Preferences.Color = strings.ToLower(value)
	case "history.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false: %w", key, err)
		}
		c.History.Enabled = b
	case "history.path":
		c.History.Path = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

// EffectiveLocale returns the configured locale or the default.
func (c *Config) EffectiveLocale() string {
	if c.Preferences.Locale == "" {
		return DefaultLocale
	}
	return c.Preferences.Locale
}

// EffectiveFormat returns the configured output format or human.
func (c *Config) EffectiveFormat() string {
	if c.Preferences.OutputFormat == "" {
		return FormatHuman
	}
	return c.Preferences.OutputFormat
}
