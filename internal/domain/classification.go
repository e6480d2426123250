package domain

// Tier is the DPC sensitivity level, 0 (no restriction) to 3 (prohibited).
type Tier int

const (
	Tier0 Tier = iota
	Tier1
	Tier2
	Tier3
)

// Valid reports whether t is within 0..3.
func (t Tier) Valid() bool {
	return t >= Tier0 && t <= Tier3
}

// LabelKind records which label family a result uses.
type LabelKind string

const (
	LabelSpecialCategory   LabelKind = "special_category"
	LabelSensitivePersonal LabelKind = "sensitive_personal"
	LabelCorporate         LabelKind = "corporate"
)

// Override names the priority rule that fixed the tier, if any.
type Override string

const (
	OverrideNone                   Override = ""
	OverrideConfidentialHighImpact Override = "confidential_high_impact"
	OverrideSecrets                Override = "secrets"
)

// ClassificationResult is the outcome of classifying one set of answers.
// LabelClass is the confidentiality type named by a corporate label.
// The confidentiality type and secrets flag are carried so presenters can
// choose recommendations without consulting the answers again.
type ClassificationResult struct {
	Tier                Tier                `json:"tier" yaml:"tier"`
	PersonalDataDriven  bool                `json:"personal_data_driven" yaml:"personal_data_driven"`
	Label               string              `json:"label" yaml:"label"`
	LabelKind           LabelKind           `json:"label_kind" yaml:"label_kind"`
	LabelClass          ConfidentialityType `json:"label_class" yaml:"label_class"`
	Override            Override            `json:"override,omitempty" yaml:"override,omitempty"`
	ConfidentialityType ConfidentialityType `json:"confidentiality_type" yaml:"confidentiality_type"`
	ContainsSecrets     bool                `json:"contains_secrets" yaml:"contains_secrets"`
}

// Status is the usage decision shown for a tier.
type Status string

const (
	StatusAllowed    Status = "allowed"
	StatusLimited    Status = "limited"
	StatusProhibited Status = "prohibited"
)

// StatusForTier maps a tier onto its usage decision.
func StatusForTier(t Tier) Status {
	switch t {
	case Tier0, Tier1:
		return StatusAllowed
	case Tier2:
		return StatusLimited
	default:
		return StatusProhibited
	}
}

// DetailKind selects the detailed recommendation shown with a result.
type DetailKind string

const (
	DetailSecrets           DetailKind = "secrets"
	DetailSpecialCategory   DetailKind = "special_category"
	DetailSensitivePersonal DetailKind = "sensitive_personal"
	DetailConfidencial      DetailKind = "confidencial"
	DetailPrivada           DetailKind = "privada"
	DetailInterna           DetailKind = "interna"
)

// DetailKind picks the detailed recommendation: secrets first, then
// personal-data-driven tiers 3 and 2, then the confidentiality type.
func (r ClassificationResult) DetailKind() DetailKind {
	switch {
	case r.ContainsSecrets:
		return DetailSecrets
	case r.PersonalDataDriven && r.Tier == Tier3:
		return DetailSpecialCategory
	case r.PersonalDataDriven && r.Tier == Tier2:
		return DetailSensitivePersonal
	case r.ConfidentialityType == Confidencial:
		return DetailConfidencial
	case r.ConfidentialityType == Privada:
		return DetailPrivada
	default:
		return DetailInterna
	}
}
