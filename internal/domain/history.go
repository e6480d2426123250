package domain

import "time"

// HistoryRecord captures one submitted questionnaire and its outcome.
type HistoryRecord struct {
	ID                  string               `json:"id"`
	Timestamp           time.Time            `json:"timestamp"`
	Answers             QuestionnaireAnswers `json:"answers"`
	Tier                Tier                 `json:"tier"`
	Label               string               `json:"label"`
	PersonalDataDriven  bool                 `json:"personal_data_driven"`
	ConfidentialityType ConfidentialityType  `json:"confidentiality_type"`
	Source              string               `json:"source"`
}

// HistoryStats summarises stored classifications.
type HistoryStats struct {
	Total              int
	PerTier            [4]int
	PersonalDataDriven int
}

// SummarizeHistory counts records per tier and personal-data-driven results.
func SummarizeHistory(records []HistoryRecord) HistoryStats {
	stats := HistoryStats{Total: len(records)}
	for _, rec := range records {
		if rec.Tier.Valid() {
			stats.PerTier[rec.Tier]++
		}
		if rec.PersonalDataDriven {
			stats.PersonalDataDriven++
		}
	}
	return stats
}
