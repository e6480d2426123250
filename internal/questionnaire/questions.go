// Package questionnaire describes the DPC questions and tracks a user's
// progress through them.
package questionnaire

import (
	"fmt"
	"strings"

	"github.com/doeshing/dpc-go/internal/domain"
)

// Section groups related questions.
type Section string

const (
	SectionPersonalData Section = "Personal data"
	SectionCorporate    Section = "Corporate classification"
)

// Option is one allowed answer for a question.
type Option struct {
	Value   string
	Display string
	Aliases []string
}

// Question is one entry of the questionnaire.
type Question struct {
	ID      string
	Flag    string
	Section Section
	Prompt  string
	Help    string
	Options []Option
}

var yesNo = []Option{
	{Value: string(domain.Yes), Display: "Yes", Aliases: []string{"y", "si", "sí", "s", "true"}},
	{Value: string(domain.No), Display: "No", Aliases: []string{"n", "false"}},
}

var questions = []Question{
	{
		ID:      domain.FieldContainsPersonalData,
		Flag:    "personal-data",
		Section: SectionPersonalData,
		Prompt:  "Does the information contain personal data?",
		Help:    "Names, emails, phone numbers, IDs or anything that identifies a person.",
		Options: yesNo,
	},
	{
		ID:      domain.FieldClientFacing,
		Flag:    "client-facing",
		Section: SectionPersonalData,
		Prompt:  "Does it relate to clients or external parties?",
		Options: yesNo,
	},
	{
		ID:      domain.FieldSensitiveClientData,
		Flag:    "sensitive-client-data",
		Section: SectionPersonalData,
		Prompt:  "Does it include sensitive client or private data?",
		Help:    "Financial details, contracts, private conversations.",
		Options: yesNo,
	},
	{
		ID:      domain.FieldSpecialCategoryData,
		Flag:    "special-category",
		Section: SectionPersonalData,
		Prompt:  "Does it include special category data?",
		Help:    "Health, religion, ethnic origin, biometric data or similar.",
		Options: yesNo,
	},
	{
		ID:      domain.FieldConfidentialityType,
		Flag:    "confidentiality",
		Section: SectionCorporate,
		Prompt:  "How is the information classified internally?",
		Options: []Option{
			{Value: string(domain.Interna), Display: "Internal", Aliases: []string{"internal", "i"}},
			{Value: string(domain.Privada), Display: "Private/Restricted", Aliases: []string{"private", "restricted", "restringida", "p"}},
			{Value: string(domain.Confidencial), Display: "Confidential", Aliases: []string{"confidential", "c"}},
		},
	},
	{
		ID:      domain.FieldPubliclyDisclosed,
		Flag:    "public",
		Section: SectionCorporate,
		Prompt:  "Has the information already been made public?",
		Options: yesNo,
	},
	{
		ID:      domain.FieldImpactLevel,
		Flag:    "impact",
		Section: SectionCorporate,
		Prompt:  "What would the impact be if it leaked?",
		Options: []Option{
			{Value: string(domain.ImpactLow), Display: "Low", Aliases: []string{"l", "bajo", "baja"}},
			{Value: string(domain.ImpactMedium), Display: "Medium", Aliases: []string{"m", "med", "medio", "media"}},
			{Value: string(domain.ImpactHigh), Display: "High", Aliases: []string{"h", "alto", "alta"}},
		},
	},
	{
		ID:      domain.FieldContainsSecrets,
		Flag:    "secrets",
		Section: SectionCorporate,
		Prompt:  "Does it contain credentials, passwords, tokens or other secrets?",
		Options: yesNo,
	},
}

// Questions returns the questionnaire in the order it is asked.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// Lookup finds a question by id or flag name.
func Lookup(key string) (Question, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, q := range questions {
		if strings.ToLower(q.ID) == key || q.Flag == key {
			return q, true
		}
	}
	return Question{}, false
}

// InvalidOptionError reports an answer outside a question's options.
type InvalidOptionError struct {
	Question string
	Value    string
	Allowed  []string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid answer %q for %s (allowed: %s)", e.Value, e.Question, strings.Join(e.Allowed, ", "))
}

// Parse resolves raw input (value, alias or 1-based option number) to the
// canonical option value.
func (q Question) Parse(raw string) (string, error) {
	in := strings.ToLower(strings.TrimSpace(raw))
	for i, opt := range q.Options {
		if in == opt.Value || in == strings.ToLower(opt.Display) || in == fmt.Sprint(i+1) {
			return opt.Value, nil
		}
		for _, alias := range opt.Aliases {
			if in == alias {
				return opt.Value, nil
			}
		}
	}
	return "", &InvalidOptionError{Question: q.ID, Value: raw, Allowed: q.Values()}
}

// Values lists the canonical option values.
func (q Question) Values() []string {
	values := make([]string, len(q.Options))
	for i, opt := range q.Options {
		values[i] = opt.Value
	}
	return values
}

// Set parses raw for the question identified by key and stores it in answers.
func Set(answers *domain.QuestionnaireAnswers, key, raw string) error {
	q, ok := Lookup(key)
	if !ok {
		return fmt.Errorf("unknown question %q", key)
	}
	value, err := q.Parse(raw)
	if err != nil {
		return err
	}
	assign(answers, q.ID, value)
	return nil
}

func assign(a *domain.QuestionnaireAnswers, id, value string) {
	switch id {
	case domain.FieldContainsPersonalData:
		a.ContainsPersonalData = domain.YesNo(value)
	case domain.FieldClientFacing:
		a.ClientFacing = domain.YesNo(value)
	case domain.FieldSensitiveClientData:
		a.SensitiveClientData = domain.YesNo(value)
	case domain.FieldSpecialCategoryData:
		a.SpecialCategoryData = domain.YesNo(value)
	case domain.FieldConfidentialityType:
		a.ConfidentialityType = domain.ConfidentialityType(value)
	case domain.FieldPubliclyDisclosed:
		a.PubliclyDisclosed = domain.YesNo(value)
	case domain.FieldImpactLevel:
		a.ImpactLevel = domain.ImpactLevel(value)
	case domain.FieldContainsSecrets:
		a.ContainsSecrets = domain.YesNo(value)
	}
}

func unset(a *domain.QuestionnaireAnswers, id string) {
	assign(a, id, "")
}
