// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The classifier sits in the middle; answer sources
// feed it and renderers display what it produced, so neither side needs to know
// how the other is implemented.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., AnswerSource, HistoryRepository)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"
	"io"

	"github.com/doeshing/dpc-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.dpc/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// AnswerSource gathers the eight questionnaire answers from the user.
// Implementations read CLI flags, answers files, or prompt interactively.
// A source may return partially filled answers; completeness is checked by
// the caller before classification.
type AnswerSource interface {
	Name() string
	Collect(context.Context) (domain.QuestionnaireAnswers, error)
}

// Classifier maps complete answers onto a DPC tier and label.
type Classifier interface {
	Classify(domain.QuestionnaireAnswers) (domain.ClassificationResult, error)
}

// Renderer writes a classification and its status card to an output stream.
// Renderers display what they are given and never recompute the tier.
type Renderer interface {
	Render(w io.Writer, result domain.ClassificationResult, card domain.StatusCard) error
}

// HistoryRepository persists submitted classifications.
type HistoryRepository interface {
	Save(domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Clear() error
	ExportJSON(dest string) error
	Path() string
}

// Clipboard provides cross-platform clipboard integration for copying results.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
