// Package answers provides non-interactive questionnaire answer sources.
package answers

import (
	"context"

	"github.com/doeshing/dpc-go/internal/domain"
	"github.com/doeshing/dpc-go/internal/ports"
	"github.com/doeshing/dpc-go/internal/questionnaire"
)

// FlagSource turns raw command-line values keyed by question id into answers.
type FlagSource struct {
	values map[string]string
}

// NewFlagSource builds a source from raw values. Empty values are treated as
// unanswered.
func NewFlagSource(values map[string]string) *FlagSource {
	return &FlagSource{values: values}
}

// Name implements ports.AnswerSource.
func (s *FlagSource) Name() string {
	return domain.SourceFlags
}

// Collect implements ports.AnswerSource.
func (s *FlagSource) Collect(context.Context) (domain.QuestionnaireAnswers, error) {
	var answers domain.QuestionnaireAnswers
	for _, q := range questionnaire.Questions() {
		raw, ok := s.values[q.ID]
		if !ok || raw == "" {
			continue
		}
		if err := questionnaire.Set(&answers, q.ID, raw); err != nil {
			return domain.QuestionnaireAnswers{}, err
		}
	}
	return answers, nil
}

// Any reports whether at least one value was supplied.
func (s *FlagSource) Any() bool {
	for _, v := range s.values {
		if v != "" {
			return true
		}
	}
	return false
}

var _ ports.AnswerSource = (*FlagSource)(nil)
