// Package presentation turns classification results into localized status
// cards. It only looks results up; tier logic lives in the classifier.
package presentation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/dpc-go/assets"
	"github.com/doeshing/dpc-go/internal/domain"
)

// StatusText holds the texts shown for one usage status.
type StatusText struct {
	Icon           string `yaml:"icon"`
	Title          string `yaml:"title"`
	Recommendation string `yaml:"recommendation"`
}

// Messages is the text set for one locale.
type Messages struct {
	Statuses map[domain.Status]StatusText          `yaml:"statuses"`
	Labels   map[domain.LabelKind]string           `yaml:"labels"`
	Classes  map[domain.ConfidentialityType]string `yaml:"classes"`
	Details  map[domain.DetailKind]string          `yaml:"details"`
}

// MessagesFile is the YAML schema root of the message catalogue.
type MessagesFile struct {
	Locales map[string]Messages `yaml:"locales"`
}

// Catalog renders status cards for a fixed locale.
type Catalog struct {
	locale   string
	messages Messages
}

// Load parses a message catalogue and selects a locale from it.
func Load(data []byte, locale string) (*Catalog, error) {
	var file MessagesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse messages: %w", err)
	}
	if locale == "" {
		locale = domain.DefaultLocale
	}
	locale = strings.ToLower(locale)
	msgs, ok := file.Locales[locale]
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q (supported: %s)", locale, strings.Join(localeNames(file), ", "))
	}
	if err := msgs.complete(); err != nil {
		return nil, fmt.Errorf("locale %s: %w", locale, err)
	}
	return &Catalog{locale: locale, messages: msgs}, nil
}

// New loads the embedded catalogue for locale.
func New(locale string) (*Catalog, error) {
	return Load(assets.MessagesYAML, locale)
}

// Locales lists the locales available in the embedded catalogue.
func Locales() []string {
	var file MessagesFile
	if err := yaml.Unmarshal(assets.MessagesYAML, &file); err != nil {
		return nil
	}
	return localeNames(file)
}

// Locale returns the catalogue's locale.
func (c *Catalog) Locale() string {
	return c.locale
}

// Build maps a result onto its status card.
func (c *Catalog) Build(result domain.ClassificationResult) domain.StatusCard {
	status := domain.StatusForTier(result.Tier)
	text := c.messages.Statuses[status]
	detail := result.DetailKind()
	return domain.StatusCard{
		Locale:                 c.locale,
		Status:                 status,
		Icon:                   text.Icon,
		Title:                  text.Title,
		Label:                  c.Label(result),
		Recommendation:         text.Recommendation,
		DetailKind:             detail,
		DetailedRecommendation: c.messages.Details[detail],
	}
}

// Label returns the localized label for a result.
func (c *Catalog) Label(result domain.ClassificationResult) string {
	tmpl := c.messages.Labels[result.LabelKind]
	if result.LabelKind != domain.LabelCorporate {
		return tmpl
	}
	return strings.NewReplacer(
		"{tier}", strconv.Itoa(int(result.Tier)),
		"{class}", c.ClassName(result.LabelClass),
	).Replace(tmpl)
}

// ClassName returns the localized display name of a confidentiality type.
func (c *Catalog) ClassName(ct domain.ConfidentialityType) string {
	if name, ok := c.messages.Classes[ct]; ok {
		return name
	}
	return c.messages.Classes[domain.Interna]
}

func (m Messages) complete() error {
	for _, s := range []domain.Status{domain.StatusAllowed, domain.StatusLimited, domain.StatusProhibited} {
		if _, ok := m.Statuses[s]; !ok {
			return fmt.Errorf("missing status %q", s)
		}
	}
	for _, k := range []domain.LabelKind{domain.LabelSpecialCategory, domain.LabelSensitivePersonal, domain.LabelCorporate} {
		if m.Labels[k] == "" {
			return fmt.Errorf("missing label %q", k)
		}
	}
	for _, ct := range []domain.ConfidentialityType{domain.Interna, domain.Privada, domain.Confidencial} {
		if m.Classes[ct] == "" {
			return fmt.Errorf("missing class %q", ct)
		}
	}
	for _, d := range []domain.DetailKind{
		domain.DetailSecrets, domain.DetailSpecialCategory, domain.DetailSensitivePersonal,
		domain.DetailConfidencial, domain.DetailPrivada, domain.DetailInterna,
	} {
		if m.Details[d] == "" {
			return fmt.Errorf("missing detail %q", d)
		}
	}
	return nil
}

func localeNames(file MessagesFile) []string {
	names := make([]string, 0, len(file.Locales))
	for name := range file.Locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
