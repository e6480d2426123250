package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeLookPath(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestClipboardCommandSelection(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		available []string
		want      []string
		wantErr   bool
	}{
		{name: "macOS", goos: "darwin", available: []string{"pbcopy"}, want: []string{"pbcopy"}},
		{name: "windows", goos: "windows", available: []string{"clip"}, want: []string{"clip"}},
		{name: "wayland first", goos: "linux", available: []string{"xclip", "wl-copy"}, want: []string{"wl-copy"}},
		{name: "xclip", goos: "linux", available: []string{"xclip", "xsel"}, want: []string{"xclip", "-selection", "clipboard"}},
		{name: "xsel", goos: "linux", available: []string{"xsel"}, want: []string{"xsel", "--clipboard", "--input"}},
		{name: "no utility", goos: "linux", wantErr: true},
		{name: "unsupported os", goos: "plan9", available: []string{"pbcopy"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Clipboard{goos: tt.goos, lookPath: fakeLookPath(tt.available...)}
			got, err := c.command()
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, c.Enabled())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, c.Enabled())
		})
	}
}
