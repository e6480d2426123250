package domain

import (
	"errors"
	"fmt"
	"strings"
)

// YesNo is a binary questionnaire answer. The zero value means unanswered.
type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

// ConfidentialityType is the corporate classification chosen for q5.
type ConfidentialityType string

const (
	Interna      ConfidentialityType = "interna"
	Privada      ConfidentialityType = "privada"
	Confidencial ConfidentialityType = "confidencial"
)

// ImpactLevel is the expected impact if the information leaked (q7).
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// Question identifiers, in questionnaire order.
const (
	FieldContainsPersonalData = "q1"
	FieldClientFacing         = "q2"
	FieldSensitiveClientData  = "q3"
	FieldSpecialCategoryData  = "q4"
	FieldConfidentialityType  = "confidentialityType"
	FieldPubliclyDisclosed    = "q6"
	FieldImpactLevel          = "q7"
	FieldContainsSecrets      = "q8"
)

// FieldOrder lists the question identifiers in the order they are asked.
var FieldOrder = []string{
	FieldContainsPersonalData,
	FieldClientFacing,
	FieldSensitiveClientData,
	FieldSpecialCategoryData,
	FieldConfidentialityType,
	FieldPubliclyDisclosed,
	FieldImpactLevel,
	FieldContainsSecrets,
}

// QuestionnaireAnswers holds the eight answers used for classification.
// ClientFacing is required but does not influence the tier.
type QuestionnaireAnswers struct {
	ContainsPersonalData YesNo               `json:"q1" yaml:"q1"`
	ClientFacing         YesNo               `json:"q2" yaml:"q2"`
	SensitiveClientData  YesNo               `json:"q3" yaml:"q3"`
	SpecialCategoryData  YesNo               `json:"q4" yaml:"q4"`
	ConfidentialityType  ConfidentialityType `json:"confidentialityType" yaml:"confidentialityType"`
	PubliclyDisclosed    YesNo               `json:"q6" yaml:"q6"`
	ImpactLevel          ImpactLevel         `json:"q7" yaml:"q7"`
	ContainsSecrets      YesNo               `json:"q8" yaml:"q8"`
}

// Valid reports whether v is a known yes/no value.
func (v YesNo) Valid() bool {
	return v == Yes || v == No
}

// Valid reports whether c is a known confidentiality type.
func (c ConfidentialityType) Valid() bool {
	switch c {
	case Interna, Privada, Confidencial:
		return true
	default:
		return false
	}
}

// Valid reports whether l is a known impact level.
func (l ImpactLevel) Valid() bool {
	switch l {
	case ImpactLow, ImpactMedium, ImpactHigh:
		return true
	default:
		return false
	}
}

// Get returns the raw value stored for a question identifier.
func (a QuestionnaireAnswers) Get(field string) string {
	switch field {
	case FieldContainsPersonalData:
		return string(a.ContainsPersonalData)
	case FieldClientFacing:
		return string(a.ClientFacing)
	case FieldSensitiveClientData:
		return string(a.SensitiveClientData)
	case FieldSpecialCategoryData:
		return string(a.SpecialCategoryData)
	case FieldConfidentialityType:
		return string(a.ConfidentialityType)
	case FieldPubliclyDisclosed:
		return string(a.PubliclyDisclosed)
	case FieldImpactLevel:
		return string(a.ImpactLevel)
	case FieldContainsSecrets:
		return string(a.ContainsSecrets)
	default:
		return ""
	}
}

// Missing returns the identifiers of unanswered or unrecognised fields, in
// questionnaire order.
func (a QuestionnaireAnswers) Missing() []string {
	var missing []string
	check := func(field string, ok bool) {
		if !ok {
			missing = append(missing, field)
		}
	}
	check(FieldContainsPersonalData, a.ContainsPersonalData.Valid())
	check(FieldClientFacing, a.ClientFacing.Valid())
	check(FieldSensitiveClientData, a.SensitiveClientData.Valid())
	check(FieldSpecialCategoryData, a.SpecialCategoryData.Valid())
	check(FieldConfidentialityType, a.ConfidentialityType.Valid())
	check(FieldPubliclyDisclosed, a.PubliclyDisclosed.Valid())
	check(FieldImpactLevel, a.ImpactLevel.Valid())
	check(FieldContainsSecrets, a.ContainsSecrets.Valid())
	return missing
}

// Validate returns an *IncompleteInputError when any answer is missing.
func (a QuestionnaireAnswers) Validate() error {
	if missing := a.Missing(); len(missing) > 0 {
		return &IncompleteInputError{Missing: missing}
	}
	return nil
}

// ErrIncompleteInput matches any *IncompleteInputError via errors.Is.
var ErrIncompleteInput = errors.New("please answer every question before submitting")

// IncompleteInputError is returned when a submission leaves questions unanswered.
type IncompleteInputError struct {
	Missing []string
}

func (e *IncompleteInputError) Error() string {
	return fmt.Sprintf("%s (missing: %s)", ErrIncompleteInput.Error(), strings.Join(e.Missing, ", "))
}

func (e *IncompleteInputError) Is(target error) bool {
	return target == ErrIncompleteInput
}
