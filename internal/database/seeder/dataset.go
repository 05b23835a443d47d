package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"mos-translator/internal/database"
)

// DataFile mirrors the layout of data.json: a flat occupation list plus
// skill descriptions keyed by MOS code.
type DataFile struct {
	Occupations []DataOccupation    `json:"occupations"`
	Skills      map[string][]string `json:"skills"`
}

type DataOccupation struct {
	MOS   string `json:"mos"`
	Title string `json:"title"`
}

func LoadDataFile(path string) (DataFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return DataFile{}, fmt.Errorf("read data file: %w", err)
	}

	var df DataFile
	if err := json.Unmarshal(b, &df); err != nil {
		return DataFile{}, fmt.Errorf("parse data file: %w", err)
	}
	return df, nil
}

// DatasetSeeder inserts occupations and their skills in file order
// inside one transaction, so a failed import leaves no partial data.
// Skill row order is the lookup API's response order.
type DatasetSeeder struct {
	Data DataFile
}

func (DatasetSeeder) Name() string { return "dataset" }

func (s DatasetSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ids := make(map[string]int64, len(s.Data.Occupations))
	for _, occ := range s.Data.Occupations {
		var id int64
		row := tx.QueryRow(ctx,
			`INSERT INTO occupations (mos_code, title) VALUES ($1, $2) RETURNING id`,
			occ.MOS, occ.Title,
		)
		if err := row.Scan(&id); err != nil {
			return fmt.Errorf("insert occupation %s: %w", occ.MOS, err)
		}
		ids[occ.MOS] = id
	}

	for _, occ := range s.Data.Occupations {
		descs, ok := s.Data.Skills[occ.MOS]
		if !ok {
			continue
		}
		for _, desc := range descs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO skills (occupation_id, description) VALUES ($1, $2)`,
				ids[occ.MOS], desc,
			); err != nil {
				return fmt.Errorf("insert skill for %s: %w", occ.MOS, err)
			}
		}
	}

	return tx.Commit(ctx)
}
