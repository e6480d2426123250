package doctor

import (
	"context"
	"fmt"

	configapp "github.com/doeshing/dpc-go/internal/application/config"
	"github.com/doeshing/dpc-go/internal/domain"
	"github.com/doeshing/dpc-go/internal/ports"
	"github.com/doeshing/dpc-go/internal/presentation"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Classifier     ports.Classifier
	HistoryStore   ports.HistoryRepository
	Clipboard      ports.Clipboard
}

// baseline is an all-"no" internal submission; it must classify as tier 1.
var baseline = domain.QuestionnaireAnswers{
	ContainsPersonalData: domain.No,
	ClientFacing:         domain.No,
	SensitiveClientData:  domain.No,
	SpecialCategoryData:  domain.No,
	ConfidentialityType:  domain.Interna,
	PubliclyDisclosed:    domain.No,
	ImpactLevel:          domain.ImpactLow,
	ContainsSecrets:      domain.No,
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := configapp.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))
	}

	if _, err := presentation.New(cfg.EffectiveLocale()); err != nil {
		checks = append(checks, fail("Messages", err.Error()))
	} else {
		checks = append(checks, ok("Messages", fmt.Sprintf("locale %s loaded", cfg.EffectiveLocale())))
	}

	checks = append(checks, s.classifierCheck())
	checks = append(checks, s.historyCheck(cfg))
	checks = append(checks, s.clipboardCheck())

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) classifierCheck() domain.HealthCheck {
	if s.Classifier == nil {
		return warn("Classifier", "classifier not initialized")
	}
	result, err := s.Classifier.Classify(baseline)
	if err != nil {
		return fail("Classifier", err.Error())
	}
	if result.Tier != domain.Tier1 {
		return fail("Classifier", fmt.Sprintf("baseline classified as tier %d, want 1", result.Tier))
	}
	return ok("Classifier", "rules respond")
}

func (s *Service) historyCheck(cfg domain.Config) domain.HealthCheck {
	if !cfg.History.Enabled {
		return warn("History", "disabled in config")
	}
	if s.HistoryStore == nil {
		return warn("History", "history store not initialized")
	}
	records, err := s.HistoryStore.Records(0, "")
	if err != nil {
		return fail("History", err.Error())
	}
	return ok("History", fmt.Sprintf("%d records in %s", len(records), s.HistoryStore.Path()))
}

func (s *Service) clipboardCheck() domain.HealthCheck {
	if s.Clipboard == nil || !s.Clipboard.Enabled() {
		return warn("Clipboard", "not supported on this platform")
	}
	return ok("Clipboard", "available")
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
