package store

import (
	"database/sql"
	"fmt"
)

// Reader reads conversion results from a SQLite database.
type Reader struct {
	db   *sql.DB
	path string
}

// OpenReader opens a results database for reading.
func OpenReader(path string) (*Reader, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify schema exists
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='mixes'").Scan(&count)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify schema: %w", err)
	}
	if count == 0 {
		db.Close()
		return nil, fmt.Errorf("database does not contain mixes table")
	}

	return &Reader{
		db:   db,
		path: path,
	}, nil
}

// ReadEntry reads the result for one color spec.
func (r *Reader) ReadEntry(spec string) (Entry, error) {
	var (
		e       Entry
		inGamut int
	)
	err := r.db.QueryRow(`SELECT spec, in_gamut, error,
		ratio_r, ratio_g, ratio_b,
		pct_r, pct_g, pct_b,
		intensity_r, intensity_g, intensity_b,
		relative_r, relative_g, relative_b
		FROM mixes WHERE spec = ?`, spec).Scan(
		&e.Spec, &inGamut, &e.Error,
		&e.Ratio.Red, &e.Ratio.Green, &e.Ratio.Blue,
		&e.Percent.Red, &e.Percent.Green, &e.Percent.Blue,
		&e.Intensity.Red, &e.Intensity.Green, &e.Intensity.Blue,
		&e.Relative.Red, &e.Relative.Green, &e.Relative.Blue,
	)

	if err == sql.ErrNoRows {
		return Entry{}, fmt.Errorf("mix not found: %s", spec)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to query mix: %w", err)
	}

	e.InGamut = inGamut != 0
	return e, nil
}

// Count returns the number of stored results.
func (r *Reader) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM mixes").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count mixes: %w", err)
	}
	return count, nil
}

// Metadata reads run metadata from the database.
func (r *Reader) Metadata() (map[string]string, error) {
	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return nil, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		meta[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating metadata: %w", err)
	}

	return meta, nil
}

// Close closes the database.
func (r *Reader) Close() error {
	return r.db.Close()
}
