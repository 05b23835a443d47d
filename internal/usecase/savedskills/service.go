package savedskills

import (
	"context"
	"errors"
	"strings"

	"mos-translator/internal/repository"
)

var (
	ErrMissingField = errors.New("skill_description is required")
	ErrInternal     = errors.New("internal error")
)

type SavedSkillUsecase interface {
	List(ctx context.Context, userID int64) ([]repository.SavedSkill, error)
	Save(ctx context.Context, userID int64, skillDescription string) (int64, error)
	Delete(ctx context.Context, userID int64, skillID int64) error
}

type Service struct {
	saved repository.SavedSkillRepository
}

func NewService(saved repository.SavedSkillRepository) *Service {
	return &Service{saved: saved}
}

func (s *Service) List(ctx context.Context, userID int64) ([]repository.SavedSkill, error) {
	return s.saved.FindByUserID(ctx, userID)
}

// Save stores the description as-is. Saving the same description twice
// creates two rows; de-duplication is the caller's concern.
func (s *Service) Save(ctx context.Context, userID int64, skillDescription string) (int64, error) {
	if strings.TrimSpace(skillDescription) == "" {
		return 0, ErrMissingField
	}
	return s.saved.Create(ctx, userID, skillDescription)
}

// Delete is idempotent: a missing or foreign id is a silent no-op.
// Callers needing to know whether the row existed should List first.
func (s *Service) Delete(ctx context.Context, userID int64, skillID int64) error {
	return s.saved.Delete(ctx, skillID, userID)
}
