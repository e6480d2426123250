package history

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/dpc-go/internal/domain"
	"github.com/doeshing/dpc-go/internal/ports"
)

// timestampLayout is fixed-width so text order in the timestamp column is
// time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore persists classifications in a SQLite database.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	fallback *FileStore
	mu       sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path. When the database
// cannot be opened, the store degrades to a JSONL file next to it.
func NewSQLiteStore(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	fallback := NewFileStore(strings.TrimSuffix(path, filepath.Ext(path)) + ".jsonl")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path, fallback: fallback}
	}
	store := &SQLiteStore{db: db, path: path, fallback: fallback}
	if err := store.init(); err != nil {
		_ = db.Close()
		return &SQLiteStore{path: path, fallback: fallback}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS classifications (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		answers TEXT,
		tier INTEGER,
		label TEXT,
		personal_data_driven INTEGER,
		confidentiality_type TEXT,
		source TEXT
	);`)
	return err
}

// Degraded reports whether the store fell back to the JSONL file.
func (s *SQLiteStore) Degraded() bool {
	return s.db == nil
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.HistoryRecord) error {
	if s.db == nil {
		return s.fallback.Save(record)
	}
	answers, err := json.Marshal(record.Answers)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec(`INSERT INTO classifications
		(id, timestamp, answers, tier, label, personal_data_driven, confidentiality_type, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.UTC().Format(timestampLayout),
		string(answers),
		int(record.Tier),
		record.Label,
		boolToInt(record.PersonalDataDriven),
		string(record.ConfidentialityType),
		record.Source,
	)
	return err
}

// Records returns history entries, newest first (limit/search optional).
// Search matches the label or the confidentiality type.
func (s *SQLiteStore) Records(limit int, search string) ([]domain.HistoryRecord, error) {
	if s.db == nil {
		return s.fallback.Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT id, timestamp, answers, tier, label, personal_data_driven, confidentiality_type, source FROM classifications")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE label LIKE ? OR confidentiality_type LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY julianday(timestamp) DESC, timestamp DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		var ts, answers, ct string
		var tier, driven int
		if err := rows.Scan(&rec.ID, &ts, &answers, &tier, &rec.Label, &driven, &ct, &rec.Source); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			rec.Timestamp = t
		}
		if answers != "" {
			if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
				return nil, err
			}
		}
		rec.Tier = domain.Tier(tier)
		rec.PersonalDataDriven = driven == 1
		rec.ConfidentialityType = domain.ConfidentialityType(ct)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback.Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM classifications")
	return err
}

// ExportJSON writes the classification table to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0, "")
	if err != nil {
		return err
	}
	return writeJSONL(dest, records)
}

// Path returns the sqlite database path, or the fallback file when degraded.
func (s *SQLiteStore) Path() string {
	if s.db == nil {
		return s.fallback.Path()
	}
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
