package lookup

import (
	"context"
	"errors"
	"time"

	"mos-translator/internal/repository"
)

var (
	ErrNotFound = errors.New("mos code not found")
	ErrInternal = errors.New("internal error")
)

// Cache is the read-through cache in front of the MOS join. A nil Cache
// disables caching entirely.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type LookupUsecase interface {
	GetSkills(ctx context.Context, mosCode string) (repository.OccupationSkills, error)
	ListOccupations(ctx context.Context) ([]repository.Occupation, error)
}

type Service struct {
	occupations repository.OccupationRepository
	cache       Cache
	cacheTTL    time.Duration
}

func NewService(occupations repository.OccupationRepository, cache Cache, cacheTTL time.Duration) *Service {
	return &Service{occupations: occupations, cache: cache, cacheTTL: cacheTTL}
}

// GetSkills resolves a MOS code to its title and skill list. The match
// is exact and case-sensitive. Misses and skill-less occupations both
// come back as ErrNotFound.
func (s *Service) GetSkills(ctx context.Context, mosCode string) (repository.OccupationSkills, error) {
	key := "mos:" + mosCode

	if s.cache != nil {
		var cached repository.OccupationSkills
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	out, err := s.occupations.GetSkillsByCode(ctx, mosCode)
	if err != nil {
		if errors.Is(err, repository.ErrOccupationNotFound) {
			return repository.OccupationSkills{}, ErrNotFound
		}
		return repository.OccupationSkills{}, err
	}

	if s.cache != nil {
		// Best effort; a cold or unreachable cache never fails a lookup.
		_ = s.cache.SetJSON(ctx, key, out, s.cacheTTL)
	}
	return out, nil
}

func (s *Service) ListOccupations(ctx context.Context) ([]repository.Occupation, error) {
	return s.occupations.ListOccupations(ctx)
}
