package config

import (
	"testing"

	"github.com/doeshing/dpc-go/internal/domain"
)

func TestValidate(t *testing.T) {
	valid := domain.Config{
		Preferences: domain.Preferences{Locale: "en", OutputFormat: "json", Color: "never"},
		History:     domain.HistorySettings{Enabled: true, Path: "/tmp/history.db"},
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*domain.Config) {}},
		{name: "empty preferences use defaults", mutate: func(c *domain.Config) { c.Preferences = domain.Preferences{} }},
		{name: "spanish locale", mutate: func(c *domain.Config) { c.Preferences.Locale = "ES" }},
		{name: "unknown locale", mutate: func(c *domain.Config) { c.Preferences.Locale = "fr" }, wantErr: true},
		{name: "unknown format", mutate: func(c *domain.Config) { c.Preferences.OutputFormat = "xml" }, wantErr: true},
		{name: "unknown color", mutate: func(c *domain.Config) { c.Preferences.Color = "sometimes" }, wantErr: true},
		{name: "history without path", mutate: func(c *domain.Config) { c.History.Path = " " }, wantErr: true},
		{name: "disabled history without path", mutate: func(c *domain.Config) {
			c.History = domain.HistorySettings{Enabled: false}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr && err == nil {
				t.Fatal("expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
