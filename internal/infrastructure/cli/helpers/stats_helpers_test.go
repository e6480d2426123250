package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/dpc-go/internal/domain"
)

func TestCalculateTopLabels(t *testing.T) {
	records := []domain.HistoryRecord{
		{Label: "tier 1 · Internal"},
		{Label: "tier 3 · Confidential"},
		{Label: "tier 1 · Internal"},
		{Label: "tier 2 · sensitive personal data"},
	}

	all := CalculateTopLabels(records, 0)
	assert.Equal(t, []LabelStatistic{
		{Label: "tier 1 · Internal", Count: 2},
		{Label: "tier 2 · sensitive personal data", Count: 1},
		{Label: "tier 3 · Confidential", Count: 1},
	}, all)

	top := CalculateTopLabels(records, 1)
	assert.Len(t, top, 1)
	assert.Equal(t, "tier 1 · Internal", top[0].Label)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.InDelta(t, 25.0, Percentage(1, 4), 0.001)
}
