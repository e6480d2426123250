package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/dpc-go/internal/app"
	"github.com/doeshing/dpc-go/internal/domain"
)

type memoryHistory struct {
	records []domain.HistoryRecord
}

func (m *memoryHistory) Save(rec domain.HistoryRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *memoryHistory) Records(limit int, _ string) ([]domain.HistoryRecord, error) {
	if limit > 0 && len(m.records) > limit {
		return m.records[:limit], nil
	}
	return m.records, nil
}

func (m *memoryHistory) Clear() error            { m.records = nil; return nil }
func (m *memoryHistory) ExportJSON(string) error { return nil }
func (m *memoryHistory) Path() string            { return "memory" }

func TestDisplayDoctorReport(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	displayDoctorReport(&buf, domain.HealthReport{Checks: []domain.HealthCheck{
		{Name: "Config file", Status: domain.HealthOK, Details: "format version 1"},
		{Name: "Clipboard", Status: domain.HealthWarn, Details: "not supported on this platform"},
	}})

	assert.Equal(t,
		"[OK] Config file - format version 1\n[WARN] Clipboard - not supported on this platform\n",
		buf.String())
}

func TestHistoryStatsAndList(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	store := &memoryHistory{records: []domain.HistoryRecord{
		{ID: "0123456789abcdef", Timestamp: now, Tier: domain.Tier2, Label: "tier 2 · sensitive personal data", PersonalDataDriven: true, Source: "flags"},
		{ID: "fedcba", Timestamp: now, Tier: domain.Tier1, Label: "tier 1 · Internal", Source: "file"},
	}}
	container := &app.Container{HistoryStore: store}

	var buf bytes.Buffer
	require.NoError(t, listHistoryEntries(&buf, container, 10))
	assert.Contains(t, buf.String(), "2026-10-19T09:30:00Z | 01234567 | tier 2 | tier 2 · sensitive personal data | flags\n")
	assert.Contains(t, buf.String(), "| fedcba | tier 1 |")

	buf.Reset()
	require.NoError(t, showHistoryStats(&buf, container))
	out := buf.String()
	assert.Contains(t, out, "Entries analyzed: 2")
	assert.Contains(t, out, "Personal-data driven: 1 (50.0%)")
	assert.Contains(t, out, "tier 2 (limited): 1")
	assert.Contains(t, out, "tier 1 · Internal (1)")

	require.NoError(t, clearHistory(&buf, container))
	buf.Reset()
	require.NoError(t, showHistoryStats(&buf, container))
	assert.Equal(t, MsgNoHistoryRecorded+"\n", buf.String())
}

func TestCommandsRequireDependencies(t *testing.T) {
	empty := &app.Container{}
	var buf bytes.Buffer

	assert.EqualError(t, listHistoryEntries(&buf, empty, 1), ErrHistoryStoreUnavailable)
	assert.EqualError(t, runDoctorDiagnostics(NewDoctorCommand(empty), &buf, empty), ErrDoctorServiceUnavailable)
	assert.ErrorContains(t, showConfiguration(context.Background(), &buf, empty), ErrConfigLoaderUnavailable)
}
