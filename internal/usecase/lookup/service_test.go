package lookup

import (
	"context"
	"errors"
	"testing"
	"time"

	"mos-translator/internal/repository"
)

type fakeOccupationRepo struct {
	skills map[string]repository.OccupationSkills
	calls  int
}

func (f *fakeOccupationRepo) GetSkillsByCode(_ context.Context, code string) (repository.OccupationSkills, error) {
	f.calls++
	s, ok := f.skills[code]
	if !ok {
		return repository.OccupationSkills{}, repository.ErrOccupationNotFound
	}
	return s, nil
}

func (f *fakeOccupationRepo) ListOccupations(_ context.Context) ([]repository.Occupation, error) {
	return []repository.Occupation{
		{ID: 2, MOSCode: "68W", Title: "Combat Medic Specialist"},
		{ID: 1, MOSCode: "11B", Title: "Infantryman"},
	}, nil
}

type fakeCache struct {
	store map[string]repository.OccupationSkills
	sets  int
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	v, ok := f.store[key]
	if !ok {
		return false, nil
	}
	dst, ok := out.(*repository.OccupationSkills)
	if !ok {
		return false, errors.New("unexpected out type")
	}
	*dst = v
	return true, nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if f.store == nil {
		f.store = map[string]repository.OccupationSkills{}
	}
	if v, ok := value.(repository.OccupationSkills); ok {
		f.store[key] = v
	}
	f.sets++
	return nil
}

func infantryman() repository.OccupationSkills {
	return repository.OccupationSkills{
		Title: "Infantryman",
		Skills: []string{
			"Operated and maintained a variety of small arms and heavy weapons, ensuring operational readiness for missions.",
			"Led fire teams in tactical operations, coordinating movement and communication under high-pressure conditions.",
			"Conducted reconnaissance and surveillance operations, gathering and reporting critical intelligence.",
			"Trained and mentored junior team members in weapons handling, land navigation, and field tactics.",
		},
	}
}

func TestGetSkills_Found(t *testing.T) {
	repo := &fakeOccupationRepo{skills: map[string]repository.OccupationSkills{"11B": infantryman()}}
	svc := NewService(repo, nil, 0)

	res, err := svc.GetSkills(context.Background(), "11B")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Title != "Infantryman" {
		t.Fatalf("unexpected title %q", res.Title)
	}
	if len(res.Skills) != 4 {
		t.Fatalf("expected 4 skills, got %d", len(res.Skills))
	}
}

func TestGetSkills_NotFound(t *testing.T) {
	repo := &fakeOccupationRepo{skills: map[string]repository.OccupationSkills{}}
	svc := NewService(repo, nil, 0)

	if _, err := svc.GetSkills(context.Background(), "XYZ"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetSkills_CaseSensitiveMatch(t *testing.T) {
	repo := &fakeOccupationRepo{skills: map[string]repository.OccupationSkills{"11B": infantryman()}}
	svc := NewService(repo, nil, 0)

	if _, err := svc.GetSkills(context.Background(), "11b"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("lowercase code should not match, got %v", err)
	}
}

func TestGetSkills_CacheHitSkipsRepo(t *testing.T) {
	repo := &fakeOccupationRepo{skills: map[string]repository.OccupationSkills{"11B": infantryman()}}
	c := &fakeCache{store: map[string]repository.OccupationSkills{
		"mos:11B": {Title: "Infantryman", Skills: []string{"cached skill"}},
	}}
	svc := NewService(repo, c, time.Minute)

	res, err := svc.GetSkills(context.Background(), "11B")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Skills[0] != "cached skill" {
		t.Fatalf("expected cached payload, got %+v", res)
	}
	if repo.calls != 0 {
		t.Fatalf("repo should not be hit on cache hit, calls=%d", repo.calls)
	}
}

func TestGetSkills_CacheMissFillsCache(t *testing.T) {
	repo := &fakeOccupationRepo{skills: map[string]repository.OccupationSkills{"11B": infantryman()}}
	c := &fakeCache{}
	svc := NewService(repo, c, time.Minute)

	if _, err := svc.GetSkills(context.Background(), "11B"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected one repo call, got %d", repo.calls)
	}
	if c.sets != 1 {
		t.Fatalf("expected cache fill on miss, sets=%d", c.sets)
	}
}

func TestListOccupations(t *testing.T) {
	repo := &fakeOccupationRepo{}
	svc := NewService(repo, nil, 0)

	items, err := svc.ListOccupations(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 occupations, got %d", len(items))
	}
}
