package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// SlideID derives the stable id for the slide at position with the given tab.
func SlideID(position int, tabLabel string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("slide:"+strconv.Itoa(position)+":"+tabLabel)).String()
}

// SlideRepo handles slides and their stats.
type SlideRepo struct {
	db *sql.DB
}

func NewSlideRepo(db *sql.DB) *SlideRepo { return &SlideRepo{db: db} }

// Upsert writes s and replaces its stats in one transaction.
func (r *SlideRepo) Upsert(ctx context.Context, s Slide) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := r.UpsertTx(ctx, tx, s); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// UpsertTx is Upsert inside a caller-owned transaction.
func (r *SlideRepo) UpsertTx(ctx context.Context, tx *sql.Tx, s Slide) error {
	_, err := tx.ExecContext(ctx, `
	INSERT INTO slides(id, position, tab_label, eyebrow, headline, body, cta_label, cover_image_ref, float_image_ref)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		position=excluded.position,
		tab_label=excluded.tab_label,
		eyebrow=excluded.eyebrow,
		headline=excluded.headline,
		body=excluded.body,
		cta_label=excluded.cta_label,
		cover_image_ref=excluded.cover_image_ref,
		float_image_ref=excluded.float_image_ref,
		updated_at=CURRENT_TIMESTAMP;
	`, s.ID, s.Position, s.TabLabel, s.Eyebrow, s.Headline, s.Body, s.CTALabel, s.CoverImageRef, s.FloatImageRef)
	if err != nil {
		return fmt.Errorf("upsert slide %s: %w", s.TabLabel, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM slide_stats WHERE slide_id = ?`, s.ID); err != nil {
		return fmt.Errorf("clear stats for %s: %w", s.TabLabel, err)
	}
	for i, st := range s.Stats {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO slide_stats(slide_id, position, value, label) VALUES (?, ?, ?, ?)`,
			s.ID, i, st.Value, st.Label); err != nil {
			return fmt.Errorf("insert stat for %s: %w", s.TabLabel, err)
		}
	}
	return nil
}

// List returns every slide ordered by position, with stats in order.
func (r *SlideRepo) List(ctx context.Context) ([]Slide, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, position, tab_label, eyebrow, headline, body, cta_label, cover_image_ref, float_image_ref, created_at, updated_at
	FROM slides ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Slide
	index := map[string]int{}
	for rows.Next() {
		var s Slide
		if err := rows.Scan(&s.ID, &s.Position, &s.TabLabel, &s.Eyebrow, &s.Headline, &s.Body,
			&s.CTALabel, &s.CoverImageRef, &s.FloatImageRef, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		index[s.ID] = len(out)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	statRows, err := r.db.QueryContext(ctx, `SELECT slide_id, value, label FROM slide_stats ORDER BY slide_id, position`)
	if err != nil {
		return nil, err
	}
	defer statRows.Close()
	for statRows.Next() {
		var id string
		var st Stat
		if err := statRows.Scan(&id, &st.Value, &st.Label); err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			out[i].Stats = append(out[i].Stats, st)
		}
	}
	return out, statRows.Err()
}

func (r *SlideRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM slides`).Scan(&n)
	return n, err
}
