package cli

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/doeshing/dpc-go/internal/ports"
)

// Clipboard implements ports.Clipboard by piping into the platform's
// clipboard utility.
type Clipboard struct {
	goos     string
	lookPath func(string) (string, error)
}

// NewClipboard builds the clipboard helper for the running platform.
func NewClipboard() *Clipboard {
	return &Clipboard{goos: runtime.GOOS, lookPath: exec.LookPath}
}

// Enabled reports whether a clipboard utility is available.
func (c *Clipboard) Enabled() bool {
	_, err := c.command()
	return err == nil
}

// Copy copies text to the system clipboard.
func (c *Clipboard) Copy(text string) error {
	args, err := c.command()
	if err != nil {
		return err
	}
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// command returns the argv used to write the clipboard.
func (c *Clipboard) command() ([]string, error) {
	candidates := map[string][][]string{
		"darwin":  {{"pbcopy"}},
		"windows": {{"clip"}},
		"linux": {
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		},
	}
	options, ok := candidates[c.goos]
	if !ok {
		return nil, fmt.Errorf("clipboard not supported on %s", c.goos)
	}
	for _, argv := range options {
		if _, err := c.lookPath(argv[0]); err == nil {
			return argv, nil
		}
	}
	return nil, errors.New("clipboard utilities not found")
}

var _ ports.Clipboard = (*Clipboard)(nil)
