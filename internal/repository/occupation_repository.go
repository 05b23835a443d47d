package repository

import (
	"context"
	"errors"

	"mos-translator/internal/database"
)

var ErrOccupationNotFound = errors.New("occupation not found")

type Occupation struct {
	ID      int64
	MOSCode string
	Title   string
}

// OccupationSkills is the result of the MOS lookup join: the occupation
// title plus its skill descriptions in insertion order.
type OccupationSkills struct {
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
}

type OccupationRepository interface {
	GetSkillsByCode(ctx context.Context, mosCode string) (OccupationSkills, error)
	ListOccupations(ctx context.Context) ([]Occupation, error)
}

type PostgresOccupationRepository struct {
	db database.DB
}

func NewPostgresOccupationRepository(db database.DB) *PostgresOccupationRepository {
	return &PostgresOccupationRepository{db: db}
}

// GetSkillsByCode joins occupations to skills on an exact, case-sensitive
// mos_code match. Zero joined rows means ErrOccupationNotFound; an
// occupation with no skills is indistinguishable from an absent one.
func (r *PostgresOccupationRepository) GetSkillsByCode(ctx context.Context, mosCode string) (OccupationSkills, error) {
	rows, err := r.db.Query(ctx,
		`SELECT o.title, s.description
		 FROM occupations o
		 JOIN skills s ON s.occupation_id = o.id
		 WHERE o.mos_code = $1
		 ORDER BY s.id ASC`,
		mosCode,
	)
	if err != nil {
		return OccupationSkills{}, err
	}
	defer rows.Close()

	var out OccupationSkills
	for rows.Next() {
		var desc string
		if err := rows.Scan(&out.Title, &desc); err != nil {
			return OccupationSkills{}, err
		}
		out.Skills = append(out.Skills, desc)
	}
	if err := rows.Err(); err != nil {
		return OccupationSkills{}, err
	}
	if len(out.Skills) == 0 {
		return OccupationSkills{}, ErrOccupationNotFound
	}
	return out, nil
}

func (r *PostgresOccupationRepository) ListOccupations(ctx context.Context) ([]Occupation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, mos_code, title FROM occupations ORDER BY title ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Occupation, 0)
	for rows.Next() {
		var o Occupation
		if err := rows.Scan(&o.ID, &o.MOSCode, &o.Title); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
