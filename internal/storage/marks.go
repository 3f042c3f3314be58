package storage

import (
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/rustpress-net/almanac/internal/logger"
)

// Mark is a named calendar date. Disabled marks are surfaced to the picker
// as unselectable days; the rest are highlight-only.
type Mark struct {
	ID        string
	Date      time.Time
	Label     string
	Disabled  bool
	CreatedAt time.Time
}

// MarkRepository handles database operations for marked dates.
type MarkRepository struct {
	db *Database
}

// NewMarkRepository creates a new mark repository.
func NewMarkRepository(db *Database) *MarkRepository {
	return &MarkRepository{db: db}
}

const dateLayout = "2006-01-02"

// AddMark stores a new mark and returns it with its generated ID.
func (r *MarkRepository) AddMark(date time.Time, label string, disabled bool) (*Mark, error) {
	mark := &Mark{
		ID:        xid.New().String(),
		Date:      date,
		Label:     label,
		Disabled:  disabled,
		CreatedAt: time.Now(),
	}

	logger.Debug("AddMark", "mark_id", mark.ID, "date", mark.Date.Format(dateLayout))

	_, err := r.db.DB().Exec(`
		INSERT INTO marks (id, date, label, disabled, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, mark.ID, mark.Date.Format(dateLayout), mark.Label, boolToInt(mark.Disabled), mark.CreatedAt.Unix())
	if err != nil {
		logger.Error("AddMark", "error", err, "mark_id", mark.ID)
		return nil, fmt.Errorf("failed to save mark: %w", err)
	}

	return mark, nil
}

// DeleteMark removes a mark by ID.
func (r *MarkRepository) DeleteMark(id string) error {
	res, err := r.db.DB().Exec("DELETE FROM marks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete mark: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("mark not found: %s", id)
	}
	return nil
}

// ListMarks returns all marks ordered by date.
func (r *MarkRepository) ListMarks() ([]Mark, error) {
	rows, err := r.db.DB().Query(`
		SELECT id, date, label, disabled, created_at
		FROM marks
		ORDER BY date, created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query marks: %w", err)
	}
	defer rows.Close()

	var marks []Mark
	for rows.Next() {
		var (
			m         Mark
			dateStr   string
			disabled  int
			createdAt int64
		)
		if err := rows.Scan(&m.ID, &dateStr, &m.Label, &disabled, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan mark: %w", err)
		}
		m.Date, err = time.ParseInLocation(dateLayout, dateStr, time.Local)
		if err != nil {
			logger.Warn("ListMarks: skipping row with bad date", "mark_id", m.ID, "date", dateStr)
			continue
		}
		m.Disabled = disabled != 0
		m.CreatedAt = time.Unix(createdAt, 0)
		marks = append(marks, m)
	}

	return marks, rows.Err()
}

// DisabledDates returns the dates of all disabled marks.
func (r *MarkRepository) DisabledDates() ([]time.Time, error) {
	marks, err := r.ListMarks()
	if err != nil {
		return nil, err
	}
	var dates []time.Time
	for _, m := range marks {
		if m.Disabled {
			dates = append(dates, m.Date)
		}
	}
	return dates, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
