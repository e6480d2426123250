package domain

// StatusCard is the presentation view-model for a classification. Every
// field is plain text; renderers are responsible for escaping it.
type StatusCard struct {
	Locale                 string     `json:"locale" yaml:"locale"`
	Status                 Status     `json:"status" yaml:"status"`
	Icon                   string     `json:"icon" yaml:"icon"`
	Title                  string     `json:"title" yaml:"title"`
	Label                  string     `json:"label" yaml:"label"`
	Recommendation         string     `json:"recommendation" yaml:"recommendation"`
	DetailKind             DetailKind `json:"detail_kind" yaml:"detail_kind"`
	DetailedRecommendation string     `json:"detailed_recommendation" yaml:"detailed_recommendation"`
}
