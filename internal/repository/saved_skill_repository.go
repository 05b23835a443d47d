package repository

import (
	"context"

	"mos-translator/internal/database"
)

// SavedSkill is a denormalized copy of a skill description a user chose
// to keep. It deliberately does not reference the skills table.
type SavedSkill struct {
	ID               int64  `json:"id"`
	UserID           int64  `json:"-"`
	SkillDescription string `json:"skill_description"`
}

type SavedSkillRepository interface {
	FindByUserID(ctx context.Context, userID int64) ([]SavedSkill, error)
	Create(ctx context.Context, userID int64, skillDescription string) (int64, error)
	Delete(ctx context.Context, id int64, userID int64) error
}

type PostgresSavedSkillRepository struct {
	db database.DB
}

func NewPostgresSavedSkillRepository(db database.DB) *PostgresSavedSkillRepository {
	return &PostgresSavedSkillRepository{db: db}
}

func (r *PostgresSavedSkillRepository) FindByUserID(ctx context.Context, userID int64) ([]SavedSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, skill_description
		 FROM user_saved_skills
		 WHERE user_id = $1
		 ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SavedSkill, 0)
	for rows.Next() {
		var s SavedSkill
		if err := rows.Scan(&s.ID, &s.UserID, &s.SkillDescription); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSavedSkillRepository) Create(ctx context.Context, userID int64, skillDescription string) (int64, error) {
	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_saved_skills (user_id, skill_description)
		 VALUES ($1, $2) RETURNING id`,
		userID, skillDescription,
	)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Delete removes the row only when both id and owner match. Deleting a
// missing or foreign row affects zero rows and is not an error.
func (r *PostgresSavedSkillRepository) Delete(ctx context.Context, id int64, userID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM user_saved_skills WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	return err
}
