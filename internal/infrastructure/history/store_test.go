package history

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/dpc-go/internal/domain"
)

func record(tier domain.Tier, label string, ct domain.ConfidentialityType, at time.Time) domain.HistoryRecord {
	return domain.HistoryRecord{
		ID:                  uuid.NewString(),
		Timestamp:           at,
		Tier:                tier,
		Label:               label,
		ConfidentialityType: ct,
		PersonalDataDriven:  tier == domain.Tier3 && label == "tier 3 · special category",
		Source:              domain.SourceFlags,
		Answers: domain.QuestionnaireAnswers{
			ContainsPersonalData: domain.No,
			ClientFacing:         domain.No,
			SensitiveClientData:  domain.No,
			SpecialCategoryData:  domain.No,
			ConfidentialityType:  ct,
			PubliclyDisclosed:    domain.No,
			ImpactLevel:          domain.ImpactLow,
			ContainsSecrets:      domain.No,
		},
	}
}

func seed(t *testing.T, store interface{ Save(domain.HistoryRecord) error }) time.Time {
	t.Helper()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, store.Save(record(domain.Tier1, "tier 1 · Internal", domain.Interna, base)))
	require.NoError(t, store.Save(record(domain.Tier2, "tier 2 · Private/Restricted", domain.Privada, base.Add(time.Minute))))
	require.NoError(t, store.Save(record(domain.Tier3, "tier 3 · special category", domain.Interna, base.Add(2*time.Minute))))
	return base
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	t.Cleanup(func() { _ = store.Close() })
	require.False(t, store.Degraded())
	seed(t, store)

	records, err := store.Records(0, "")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.Tier3, records[0].Tier, "newest first")
	assert.True(t, records[0].PersonalDataDriven)
	assert.Equal(t, domain.Interna, records[0].Answers.ConfidentialityType)

	limited, err := store.Records(1, "")
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	privada, err := store.Records(0, "privada")
	require.NoError(t, err)
	require.Len(t, privada, 1)
	assert.Equal(t, domain.Tier2, privada[0].Tier)

	require.NoError(t, store.Clear())
	records, err = store.Records(0, "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStoresOrderSubSecondRecords(t *testing.T) {
	dir := t.TempDir()
	sqlite := NewSQLiteStore(filepath.Join(dir, "history.db"))
	t.Cleanup(func() { _ = sqlite.Close() })
	stores := map[string]interface {
		Save(domain.HistoryRecord) error
		Records(int, string) ([]domain.HistoryRecord, error)
	}{
		"sqlite": sqlite,
		"jsonl":  NewFileStore(filepath.Join(dir, "history.jsonl")),
	}

	at := time.Date(2026, 1, 2, 10, 0, 5, 0, time.UTC)
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			older := record(domain.Tier1, "tier 1 · Internal", domain.Interna, at)
			newer := record(domain.Tier2, "tier 2 · Private/Restricted", domain.Privada, at.Add(500*time.Millisecond))
			require.NoError(t, store.Save(older))
			require.NoError(t, store.Save(newer))

			records, err := store.Records(0, "")
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, newer.ID, records[0].ID)
			assert.Equal(t, older.ID, records[1].ID)
			assert.True(t, records[0].Timestamp.Equal(newer.Timestamp))
		})
	}
}

func TestSQLiteStoreExportJSON(t *testing.T) {
	dir := t.TempDir()
	store := NewSQLiteStore(filepath.Join(dir, "history.db"))
	t.Cleanup(func() { _ = store.Close() })
	seed(t, store)

	dest := filepath.Join(dir, "export.jsonl")
	require.NoError(t, store.ExportJSON(dest))
	assert.Equal(t, 3, countLines(t, dest))
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "history.jsonl"))
	seed(t, store)

	records, err := store.Records(2, "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.Tier3, records[0].Tier)
	assert.Equal(t, domain.Tier2, records[1].Tier)

	special, err := store.Records(0, "special")
	require.NoError(t, err)
	assert.Len(t, special, 1)

	dest := filepath.Join(dir, "export.jsonl")
	require.NoError(t, store.ExportJSON(dest))
	assert.Equal(t, 3, countLines(t, dest))

	require.NoError(t, store.Clear())
	records, err = store.Records(0, "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.jsonl"))
	records, err := store.Records(0, "")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, store.Clear())
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		n++
	}
	require.NoError(t, scanner.Err())
	return n
}
