package seeder

import (
	"context"

	"mos-translator/internal/database"
)

// SchemaSeeder drops and recreates the four application tables. The
// importer is idempotent by reset: rerunning it always starts from a
// clean slate.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	stmts := []string{
		`DROP TABLE IF EXISTS user_saved_skills`,
		`DROP TABLE IF EXISTS users`,
		`DROP TABLE IF EXISTS skills`,
		`DROP TABLE IF EXISTS occupations`,

		`CREATE TABLE users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		)`,

		`CREATE TABLE occupations (
			id BIGSERIAL PRIMARY KEY,
			mos_code TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL
		)`,

		`CREATE TABLE skills (
			id BIGSERIAL PRIMARY KEY,
			occupation_id BIGINT NOT NULL REFERENCES occupations (id) ON DELETE CASCADE,
			description TEXT NOT NULL
		)`,

		`CREATE TABLE user_saved_skills (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			skill_description TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
