package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/dpc-go/internal/classifier"
	"github.com/doeshing/dpc-go/internal/domain"
)

func completeAnswers() domain.QuestionnaireAnswers {
	return domain.QuestionnaireAnswers{
		ContainsPersonalData: domain.No,
		ClientFacing:         domain.No,
		SensitiveClientData:  domain.No,
		SpecialCategoryData:  domain.No,
		ConfidentialityType:  domain.Interna,
		PubliclyDisclosed:    domain.No,
		ImpactLevel:          domain.ImpactLow,
		ContainsSecrets:      domain.No,
	}
}

func TestEnglishLabelMatchesClassifier(t *testing.T) {
	cat, err := New(domain.LocaleEnglish)
	require.NoError(t, err)

	types := []domain.ConfidentialityType{domain.Interna, domain.Privada, domain.Confidencial}
	impacts := []domain.ImpactLevel{domain.ImpactLow, domain.ImpactMedium, domain.ImpactHigh}
	yn := []domain.YesNo{domain.Yes, domain.No}

	for _, ct := range types {
		for _, impact := range impacts {
			for _, q3 := range yn {
				for _, q4 := range yn {
					for _, q8 := range yn {
						a := completeAnswers()
						a.ConfidentialityType = ct
						a.ImpactLevel = impact
						a.SensitiveClientData = q3
						a.SpecialCategoryData = q4
						a.ContainsSecrets = q8

						result := classifier.Classify(a)
						assert.Equal(t, result.Label, cat.Label(result), "answers %+v", a)
					}
				}
			}
		}
	}
}

func TestSpanishLabels(t *testing.T) {
	cat, err := New("ES")
	require.NoError(t, err)
	assert.Equal(t, domain.LocaleSpanish, cat.Locale())

	tests := []struct {
		name   string
		result domain.ClassificationResult
		want   string
	}{
		{
			name:   "special category",
			result: domain.ClassificationResult{Tier: domain.Tier3, LabelKind: domain.LabelSpecialCategory},
			want:   "DPC 3 • Categoría especial",
		},
		{
			name:   "sensitive personal",
			result: domain.ClassificationResult{Tier: domain.Tier2, LabelKind: domain.LabelSensitivePersonal},
			want:   "DPC 2 • Datos sensibles",
		},
		{
			name:   "corporate private",
			result: domain.ClassificationResult{Tier: domain.Tier2, LabelKind: domain.LabelCorporate, LabelClass: domain.Privada},
			want:   "DPC 2 • Privada / Restringida",
		},
		{
			name:   "corporate internal",
			result: domain.ClassificationResult{Tier: domain.Tier1, LabelKind: domain.LabelCorporate, LabelClass: domain.Interna},
			want:   "DPC 1 • Interna",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cat.Label(tt.result))
		})
	}
}

func TestBuildStatusCard(t *testing.T) {
	cat, err := New("")
	require.NoError(t, err)

	tests := []struct {
		name       string
		result     domain.ClassificationResult
		wantStatus domain.Status
		wantIcon   string
		wantDetail domain.DetailKind
	}{
		{
			name:       "tier 0 internal",
			result:     domain.ClassificationResult{Tier: domain.Tier0, LabelKind: domain.LabelCorporate, ConfidentialityType: domain.Interna},
			wantStatus: domain.StatusAllowed,
			wantIcon:   "✅",
			wantDetail: domain.DetailInterna,
		},
		{
			name:       "tier 1 private",
			result:     domain.ClassificationResult{Tier: domain.Tier1, LabelKind: domain.LabelCorporate, ConfidentialityType: domain.Privada},
			wantStatus: domain.StatusAllowed,
			wantIcon:   "✅",
			wantDetail: domain.DetailPrivada,
		},
		{
			name:       "tier 2 sensitive",
			result:     domain.ClassificationResult{Tier: domain.Tier2, PersonalDataDriven: true, LabelKind: domain.LabelSensitivePersonal, ConfidentialityType: domain.Privada},
			wantStatus: domain.StatusLimited,
			wantIcon:   "⚠️",
			wantDetail: domain.DetailSensitivePersonal,
		},
		{
			name:       "tier 3 special category",
			result:     domain.ClassificationResult{Tier: domain.Tier3, PersonalDataDriven: true, LabelKind: domain.LabelSpecialCategory, ConfidentialityType: domain.Confidencial},
			wantStatus: domain.StatusProhibited,
			wantIcon:   "❌",
			wantDetail: domain.DetailSpecialCategory,
		},
		{
			name:       "secrets win over everything",
			result:     domain.ClassificationResult{Tier: domain.Tier3, LabelKind: domain.LabelCorporate, LabelClass: domain.Confidencial, ConfidentialityType: domain.Interna, ContainsSecrets: true},
			wantStatus: domain.StatusProhibited,
			wantIcon:   "❌",
			wantDetail: domain.DetailSecrets,
		},
		{
			name:       "tier 3 confidential",
			result:     domain.ClassificationResult{Tier: domain.Tier3, LabelKind: domain.LabelCorporate, LabelClass: domain.Confidencial, ConfidentialityType: domain.Confidencial},
			wantStatus: domain.StatusProhibited,
			wantIcon:   "❌",
			wantDetail: domain.DetailConfidencial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := cat.Build(tt.result)
			assert.Equal(t, tt.wantStatus, card.Status)
			assert.Equal(t, tt.wantIcon, card.Icon)
			assert.Equal(t, tt.wantDetail, card.DetailKind)
			assert.NotEmpty(t, card.Title)
			assert.NotEmpty(t, card.Recommendation)
			assert.NotEmpty(t, card.DetailedRecommendation)
			assert.Equal(t, cat.Label(tt.result), card.Label)
		})
	}
}

func TestLoadRejectsUnknownLocale(t *testing.T) {
	_, err := New("fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported locale")
	assert.Contains(t, err.Error(), "en, es")
}

func TestLoadRejectsIncompleteCatalogue(t *testing.T) {
	data := []byte(`
locales:
  en:
    statuses:
      allowed: {icon: "ok", title: "Allowed", recommendation: "go"}
`)
	_, err := Load(data, "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing status")
}

func TestLocales(t *testing.T) {
	assert.Equal(t, []string{"en", "es"}, Locales())
}
