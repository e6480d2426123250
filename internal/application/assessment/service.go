package assessment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/dpc-go/internal/domain"
	"github.com/doeshing/dpc-go/internal/ports"
)

// CardBuilder maps a result onto its localized status card.
type CardBuilder interface {
	Build(domain.ClassificationResult) domain.StatusCard
}

// Service orchestrates one questionnaire submission end-to-end.
type Service struct {
	Classifier   ports.Classifier
	HistoryStore ports.HistoryRepository
	Clipboard    ports.Clipboard
	Logger       ports.Logger
	Now          func() time.Time
}

// Request describes a single submission.
type Request struct {
	Source          ports.AnswerSource
	Cards           CardBuilder
	RecordHistory   bool
	CopyToClipboard bool
}

// Response carries everything a renderer needs.
type Response struct {
	ID      string
	Answers domain.QuestionnaireAnswers
	Result  domain.ClassificationResult
	Card    domain.StatusCard
	Copied  bool
}

// Run collects answers, classifies them and records the outcome.
// History and clipboard failures are logged and do not fail the run.
func (s *Service) Run(ctx context.Context, req Request) (Response, error) {
	if s.Classifier == nil || s.Logger == nil {
		return Response{}, errors.New("assessment.Service dependencies not satisfied")
	}
	if req.Source == nil || req.Cards == nil {
		return Response{}, errors.New("assessment request needs an answer source and card builder")
	}

	s.Logger.Debug("collecting answers", map[string]interface{}{"source": req.Source.Name()})
	answers, err := req.Source.Collect(ctx)
	if err != nil {
		return Response{}, fmt.Errorf("collect answers: %w", err)
	}
	if err := answers.Validate(); err != nil {
		return Response{Answers: answers}, err
	}

	result, err := s.Classifier.Classify(answers)
	if err != nil {
		return Response{Answers: answers}, fmt.Errorf("classify: %w", err)
	}
	s.Logger.Info("classified", map[string]interface{}{
		"tier":     int(result.Tier),
		"label":    result.Label,
		"driven":   result.PersonalDataDriven,
		"override": string(result.Override),
	})

	resp := Response{
		ID:      uuid.NewString(),
		Answers: answers,
		Result:  result,
		Card:    req.Cards.Build(result),
	}

	if req.RecordHistory && s.HistoryStore != nil {
		rec := domain.HistoryRecord{
			ID:                  resp.ID,
			Timestamp:           s.now(),
			Answers:             answers,
			Tier:                result.Tier,
			Label:               result.Label,
			PersonalDataDriven:  result.PersonalDataDriven,
			ConfidentialityType: answers.ConfidentialityType,
			Source:              req.Source.Name(),
		}
		if err := s.HistoryStore.Save(rec); err != nil {
			s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error(), "path": s.HistoryStore.Path()})
		}
	}

	if req.CopyToClipboard && s.Clipboard != nil && s.Clipboard.Enabled() {
		if err := s.Clipboard.Copy(Summary(resp.Card)); err != nil {
			s.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
		} else {
			resp.Copied = true
		}
	}

	return resp, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Summary is the plain-text form of a card used for the clipboard.
func Summary(card domain.StatusCard) string {
	return fmt.Sprintf("%s %s - %s\n%s\n%s", card.Icon, card.Title, card.Label, card.Recommendation, card.DetailedRecommendation)
}
