// Package classifier computes DPC tiers from questionnaire answers.
//
// Classification is a pure function: no I/O, no shared state, and the same
// answers always produce the same result.
package classifier

import (
	"fmt"

	"github.com/doeshing/dpc-go/internal/domain"
	"github.com/doeshing/dpc-go/internal/ports"
)

// Classifier implements ports.Classifier.
type Classifier struct{}

// New returns a Classifier.
func New() *Classifier {
	return &Classifier{}
}

// Classify implements ports.Classifier. It validates completeness first so
// callers that skipped validation still get an *domain.IncompleteInputError.
func (c *Classifier) Classify(answers domain.QuestionnaireAnswers) (domain.ClassificationResult, error) {
	if err := answers.Validate(); err != nil {
		return domain.ClassificationResult{}, err
	}
	return Classify(answers), nil
}

// Classify assumes answers are complete.
func Classify(a domain.QuestionnaireAnswers) domain.ClassificationResult {
	if a.ConfidentialityType == domain.Confidencial && a.ImpactLevel == domain.ImpactHigh {
		return corporate(domain.Tier3, a, domain.OverrideConfidentialHighImpact)
	}
	if a.ContainsSecrets == domain.Yes {
		return corporate(domain.Tier3, a, domain.OverrideSecrets)
	}

	personal, driven := personalScore(a)
	tier := max(personal, corporateScore(a))

	if a.ConfidentialityType == domain.Privada && a.PubliclyDisclosed == domain.No {
		tier = max(tier, domain.Tier2)
	}
	if a.ConfidentialityType == domain.Confidencial {
		tier = max(tier, domain.Tier3)
	}

	result := domain.ClassificationResult{
		Tier:                tier,
		PersonalDataDriven:  driven,
		LabelClass:          a.ConfidentialityType,
		ConfidentialityType: a.ConfidentialityType,
		ContainsSecrets:     a.ContainsSecrets == domain.Yes,
	}
	result.LabelKind, result.Label = label(tier, driven, a.ConfidentialityType)
	return result
}

// personalScore reports the personal-data tier and whether it came from
// sensitive (q3) or special-category (q4) data. q1 alone never sets driven.
func personalScore(a domain.QuestionnaireAnswers) (domain.Tier, bool) {
	switch {
	case a.SpecialCategoryData == domain.Yes:
		return domain.Tier3, true
	case a.SensitiveClientData == domain.Yes:
		return domain.Tier2, true
	case a.ContainsPersonalData == domain.Yes:
		return domain.Tier1, false
	default:
		return domain.Tier0, false
	}
}

func corporateScore(a domain.QuestionnaireAnswers) domain.Tier {
	switch {
	case a.PubliclyDisclosed == domain.Yes && a.ImpactLevel == domain.ImpactLow:
		return domain.Tier0
	case a.ImpactLevel == domain.ImpactHigh:
		return domain.Tier2
	default:
		return domain.Tier1
	}
}

// corporate builds an override result. Overrides always carry the
// Confidential label, whatever q5 says.
func corporate(tier domain.Tier, a domain.QuestionnaireAnswers, override domain.Override) domain.ClassificationResult {
	kind, text := label(tier, false, domain.Confidencial)
	return domain.ClassificationResult{
		Tier:                tier,
		Label:               text,
		LabelKind:           kind,
		LabelClass:          domain.Confidencial,
		Override:            override,
		ConfidentialityType: a.ConfidentialityType,
		ContainsSecrets:     a.ContainsSecrets == domain.Yes,
	}
}

func label(tier domain.Tier, driven bool, ct domain.ConfidentialityType) (domain.LabelKind, string) {
	switch {
	case driven && tier == domain.Tier3:
		return domain.LabelSpecialCategory, "tier 3 · special category"
	case driven && tier == domain.Tier2:
		return domain.LabelSensitivePersonal, "tier 2 · sensitive personal data"
	default:
		return domain.LabelCorporate, fmt.Sprintf("tier %d · %s", tier, DisplayName(ct))
	}
}

// DisplayName returns the English display name of a confidentiality type.
func DisplayName(ct domain.ConfidentialityType) string {
	switch ct {
	case domain.Privada:
		return "Private/Restricted"
	case domain.Confidencial:
		return "Confidential"
	default:
		return "Internal"
	}
}

var _ ports.Classifier = (*Classifier)(nil)
