package states

import (
	"context"
	"fmt"

	"github.com/ziadkadry99/globe-explorer/internal/db"
)

// SQLiteSource reads the dataset from the states table, ordered by position.
type SQLiteSource struct {
	DB *db.DB
}

// Load implements Source.
func (s SQLiteSource) Load(ctx context.Context) (*Dataset, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT abbreviation, name, capital, nickname, population, region, description, latitude, longitude
		FROM states ORDER BY position, abbreviation`)
	if err != nil {
		return nil, fmt.Errorf("querying states: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Abbreviation, &r.Name, &r.Capital, &r.Nickname,
			&r.Population, &r.Region, &r.Description, &r.Latitude, &r.Longitude); err != nil {
			return nil, fmt.Errorf("scanning state: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating states: %w", err)
	}
	return NewDataset(records)
}

// SaveSQLite replaces the contents of the states table with ds, preserving
// record order.
func SaveSQLite(ctx context.Context, database *db.DB, ds *Dataset) error {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM states`); err != nil {
		return fmt.Errorf("clearing states: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO states (abbreviation, position, name, capital, nickname, population, region, description, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range ds.records {
		if _, err := stmt.ExecContext(ctx, r.Abbreviation, i, r.Name, r.Capital, r.Nickname,
			r.Population, r.Region, r.Description, r.Latitude, r.Longitude); err != nil {
			return fmt.Errorf("inserting %s: %w", r.Abbreviation, err)
		}
	}

	return tx.Commit()
}
