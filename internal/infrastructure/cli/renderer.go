package cli

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/dpc-go/internal/domain"
	"github.com/doeshing/dpc-go/internal/ports"
)

// NewRenderer picks a renderer for format. colorMode only affects the human
// format; "auto" colours when stdout is a terminal.
func NewRenderer(format, colorMode string) (ports.Renderer, error) {
	switch strings.ToLower(format) {
	case "", domain.FormatHuman:
		return newHumanRenderer(colorMode), nil
	case domain.FormatJSON:
		return JSONRenderer{}, nil
	case domain.FormatYAML:
		return YAMLRenderer{}, nil
	case domain.FormatHTML:
		return HTMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want human|json|yaml|html)", format)
	}
}

// output is the machine-readable document for json and yaml formats.
type output struct {
	Result domain.ClassificationResult `json:"result" yaml:"result"`
	Card   domain.StatusCard           `json:"card" yaml:"card"`
}

// HumanRenderer prints a coloured status card.
type HumanRenderer struct {
	palette map[domain.Status]*color.Color
	bold    *color.Color
	dim     *color.Color
}

func newHumanRenderer(mode string) HumanRenderer {
	r := HumanRenderer{
		palette: map[domain.Status]*color.Color{
			domain.StatusAllowed:    color.New(color.FgGreen, color.Bold),
			domain.StatusLimited:    color.New(color.FgYellow, color.Bold),
			domain.StatusProhibited: color.New(color.FgRed, color.Bold),
		},
		bold: color.New(color.Bold),
		dim:  color.New(color.Faint),
	}
	for _, c := range r.all() {
		switch strings.ToLower(mode) {
		case domain.ColorAlways:
			c.EnableColor()
		case domain.ColorNever:
			c.DisableColor()
		}
	}
	return r
}

func (r HumanRenderer) all() []*color.Color {
	out := []*color.Color{r.bold, r.dim}
	for _, c := range r.palette {
		out = append(out, c)
	}
	return out
}

// Render implements ports.Renderer.
func (r HumanRenderer) Render(w io.Writer, result domain.ClassificationResult, card domain.StatusCard) error {
	status := r.palette[card.Status]
	if status == nil {
		status = r.bold
	}
	fmt.Fprintln(w)
	status.Fprintf(w, "%s  %s\n", safeText(card.Icon), safeText(card.Title))
	r.bold.Fprintf(w, "   %s\n\n", safeText(card.Label))
	fmt.Fprintf(w, "   %s\n", safeText(card.Recommendation))
	fmt.Fprintf(w, "   %s\n", safeText(card.DetailedRecommendation))
	if result.Override != domain.OverrideNone {
		r.dim.Fprintf(w, "\n   override: %s\n", result.Override)
	}
	return nil
}

// JSONRenderer prints the result and card as indented JSON.
type JSONRenderer struct{}

// Render implements ports.Renderer.
func (JSONRenderer) Render(w io.Writer, result domain.ClassificationResult, card domain.StatusCard) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output{Result: result, Card: card})
}

// YAMLRenderer prints the result and card as YAML.
type YAMLRenderer struct{}

// Render implements ports.Renderer.
func (YAMLRenderer) Render(w io.Writer, result domain.ClassificationResult, card domain.StatusCard) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(output{Result: result, Card: card}); err != nil {
		return err
	}
	return enc.Close()
}

// cardTemplate binds card fields as text; html/template escapes every value
// for its context.
var cardTemplate = template.Must(template.New("card").Parse(`<div class="dpcResultCard dpcResultCard--{{.Card.Status}}" data-tier="{{.Result.Tier}}">
  <div class="dpcResultIcon">{{.Card.Icon}}</div>
  <div class="dpcResultTitle">{{.Card.Title}}</div>
  <div class="dpcResultLabel">{{.Card.Label}}</div>
  <div class="dpcResultRecommendation">{{.Card.Recommendation}}</div>
  <div class="dpcResultDetailed">{{.Card.DetailedRecommendation}}</div>
</div>
`))

// HTMLRenderer prints the status card as an HTML fragment.
type HTMLRenderer struct{}

// Render implements ports.Renderer.
func (HTMLRenderer) Render(w io.Writer, result domain.ClassificationResult, card domain.StatusCard) error {
	return cardTemplate.Execute(w, output{Result: result, Card: card})
}

// safeText drops control characters so catalogue text cannot smuggle
// terminal escape sequences.
func safeText(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

var (
	_ ports.Renderer = HumanRenderer{}
	_ ports.Renderer = JSONRenderer{}
	_ ports.Renderer = YAMLRenderer{}
	_ ports.Renderer = HTMLRenderer{}
)
