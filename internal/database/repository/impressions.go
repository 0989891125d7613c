package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/mattn/go-sqlite3"
)

// ImpressionRepo handles the settle log.
type ImpressionRepo struct {
	db *sql.DB
}

func NewImpressionRepo(db *sql.DB) *ImpressionRepo { return &ImpressionRepo{db: db} }

func (r *ImpressionRepo) Insert(ctx context.Context, im Impression) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO impressions(id, slide_id, slide_index, tab_label, trigger_kind, settled_at)
	VALUES (?, ?, ?, ?, ?, ?)`,
		im.ID, im.SlideID, im.SlideIndex, im.TabLabel, im.Trigger, im.SettledAt.UTC())
	return err
}

// Recent returns up to limit impressions, newest first.
func (r *ImpressionRepo) Recent(ctx context.Context, limit int) ([]Impression, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, slide_id, slide_index, tab_label, trigger_kind, settled_at
	FROM impressions ORDER BY settled_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Impression
	for rows.Next() {
		var im Impression
		if err := rows.Scan(&im.ID, &im.SlideID, &im.SlideIndex, &im.TabLabel, &im.Trigger, &im.SettledAt); err != nil {
			return nil, err
		}
		out = append(out, im)
	}
	return out, rows.Err()
}

// Summary counts impressions per slide, most viewed first.
func (r *ImpressionRepo) Summary(ctx context.Context) ([]ImpressionSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT slide_id, tab_label, COUNT(*), MAX(settled_at)
	FROM impressions GROUP BY slide_id, tab_label ORDER BY COUNT(*) DESC, tab_label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ImpressionSummary
	for rows.Next() {
		var s ImpressionSummary
		var last any
		if err := rows.Scan(&s.SlideID, &s.TabLabel, &s.Count, &last); err != nil {
			return nil, err
		}
		s.LastSettled = parseTimestamp(last)
		out = append(out, s)
	}
	return out, rows.Err()
}

// parseTimestamp reads an aggregate timestamp, which sqlite hands back
// without a declared column type.
func parseTimestamp(v any) time.Time {
	var s string
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return time.Time{}
	}
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}
