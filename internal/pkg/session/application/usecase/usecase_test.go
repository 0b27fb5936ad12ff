package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	cacheport "github.com/TrixIts/pickup/internal/infrastructure/cache/port"
	session "github.com/TrixIts/pickup/internal/pkg/session/application/domain"
)

type fakeSessionRepo struct {
	sessions map[string]session.Session
	roster   map[string]map[string]session.RosterEntry // sessionID -> profileID
	levels   map[string]session.SkillLevel
	upcoming []session.Session

	nextID      int
	created     []session.Session
	createErr   error
	upcomingErr error
	levelErr    error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: make(map[string]session.Session),
		roster:   make(map[string]map[string]session.RosterEntry),
		levels:   make(map[string]session.SkillLevel),
	}
}

func (f *fakeSessionRepo) CreateSession(ctx context.Context, s session.Session) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	id := fmt.Sprintf("id-%d", f.nextID)
	s.ID = id
	f.sessions[id] = s
	f.created = append(f.created, s)
	return id, nil
}

func (f *fakeSessionRepo) GetSession(ctx context.Context, id string) (*session.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return &s, nil
}

func (f *fakeSessionRepo) UpdateSession(ctx context.Context, s session.Session) error {
	f.sessions[s.ID] = s
	return nil
}

func (f *fakeSessionRepo) ListUpcoming(ctx context.Context, from time.Time) ([]session.Session, error) {
	if f.upcomingErr != nil {
		return nil, f.upcomingErr
	}
	return f.upcoming, nil
}

func (f *fakeSessionRepo) AddRosterEntry(ctx context.Context, e session.RosterEntry) error {
	room := f.roster[e.SessionID]
	if room == nil {
		room = make(map[string]session.RosterEntry)
		f.roster[e.SessionID] = room
	}
	room[e.ProfileID] = e
	return nil
}

func (f *fakeSessionRepo) IsOnRoster(ctx context.Context, sessionID, profileID string) (bool, error) {
	_, ok := f.roster[sessionID][profileID]
	return ok, nil
}

func (f *fakeSessionRepo) CountPlayers(ctx context.Context, sessionID string) (int, error) {
	return len(f.roster[sessionID]), nil
}

func (f *fakeSessionRepo) ListRoster(ctx context.Context, sessionID string) ([]session.RosterEntry, error) {
	var out []session.RosterEntry
	for _, e := range f.roster[sessionID] {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeSessionRepo) GetPlayerLevel(ctx context.Context, profileID string) (session.SkillLevel, error) {
	if f.levelErr != nil {
		return session.SkillAny, f.levelErr
	}
	if lvl, ok := f.levels[profileID]; ok {
		return lvl, nil
	}
	return session.SkillAny, nil
}

func TestCreateSessionSingle(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := NewCreateSessionUseCase(repo)

	created, err := uc.Execute(context.Background(), CreateSessionInput{
		Title:     "Sunday Footy",
		HostID:    "host-1",
		StartTime: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("created %d sessions, want 1", len(created))
	}
	if created[0].SeriesID != nil {
		t.Error("single session must not carry a series id")
	}

	entry, ok := repo.roster["id-1"]["host-1"]
	if !ok {
		t.Fatal("host not enrolled on the roster")
	}
	if entry.Role != session.RoleOwner {
		t.Errorf("host role = %q, want %q", entry.Role, session.RoleOwner)
	}
}

func TestCreateSessionRecurringFansOut(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := NewCreateSessionUseCase(repo)

	start := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	created, err := uc.Execute(context.Background(), CreateSessionInput{
		Title:       "Sunday Footy",
		HostID:      "host-1",
		StartTime:   start,
		IsRecurring: true,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(created) != session.DefaultSeriesOccurrences {
		t.Fatalf("created %d sessions, want %d", len(created), session.DefaultSeriesOccurrences)
	}

	seriesID := created[0].SeriesID
	if seriesID == nil || *seriesID == "" {
		t.Fatal("recurring instances must carry a series id")
	}
	for i, s := range created {
		if s.SeriesID == nil || *s.SeriesID != *seriesID {
			t.Errorf("instance %d: series id not shared", i)
		}
		if want := start.AddDate(0, 0, i*7); !s.StartTime.Equal(want) {
			t.Errorf("instance %d: StartTime = %v, want %v", i, s.StartTime, want)
		}
		if _, ok := repo.roster[s.ID]["host-1"]; !ok {
			t.Errorf("instance %d: host missing from roster", i)
		}
	}
}

func TestCreateSessionValidation(t *testing.T) {
	uc := NewCreateSessionUseCase(newFakeSessionRepo())
	if _, err := uc.Execute(context.Background(), CreateSessionInput{StartTime: time.Now()}); err == nil {
		t.Error("want error for missing title")
	}
	if _, err := uc.Execute(context.Background(), CreateSessionInput{Title: "x"}); err == nil {
		t.Error("want error for missing start time")
	}
}

func TestJoinSessionGates(t *testing.T) {
	base := session.Session{
		ID:          "s1",
		Title:       "Sunday Footy",
		PlayerLimit: 2,
		Level:       session.SkillIntermediate,
	}

	tests := []struct {
		name    string
		prepare func(*fakeSessionRepo)
		wantErr error
	}{
		{
			name: "joins when all gates pass",
			prepare: func(r *fakeSessionRepo) {
				r.levels["p1"] = session.SkillAdvanced
			},
			wantErr: nil,
		},
		{
			name:    "unknown session",
			prepare: func(r *fakeSessionRepo) { delete(r.sessions, "s1") },
			wantErr: session.ErrSessionNotFound,
		},
		{
			name: "duplicate join",
			prepare: func(r *fakeSessionRepo) {
				r.levels["p1"] = session.SkillAdvanced
				_ = r.AddRosterEntry(context.Background(), session.RosterEntry{SessionID: "s1", ProfileID: "p1"})
			},
			wantErr: session.ErrAlreadyJoined,
		},
		{
			name: "session full",
			prepare: func(r *fakeSessionRepo) {
				r.levels["p1"] = session.SkillAdvanced
				_ = r.AddRosterEntry(context.Background(), session.RosterEntry{SessionID: "s1", ProfileID: "a"})
				_ = r.AddRosterEntry(context.Background(), session.RosterEntry{SessionID: "s1", ProfileID: "b"})
			},
			wantErr: session.ErrSessionFull,
		},
		{
			name: "skill too low",
			prepare: func(r *fakeSessionRepo) {
				r.levels["p1"] = session.SkillBeginner
			},
			wantErr: session.ErrSkillTooLow,
		},
		{
			name:    "unrated player blocked from gated session",
			prepare: func(r *fakeSessionRepo) {},
			wantErr: session.ErrSkillTooLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeSessionRepo()
			repo.sessions["s1"] = base
			tt.prepare(repo)

			uc := NewJoinSessionUseCase(repo)
			err := uc.Execute(context.Background(), JoinSessionInput{SessionID: "s1", ProfileID: "p1"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Execute = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if ok, _ := repo.IsOnRoster(context.Background(), "s1", "p1"); !ok {
					t.Error("player missing from roster after successful join")
				}
			}
		})
	}
}

func TestJoinSessionLevelLookupFailureSurfaces(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.sessions["s1"] = session.Session{
		ID:          "s1",
		PlayerLimit: 10,
		Level:       session.SkillIntermediate,
	}
	repo.levelErr = errors.New("connection reset")

	uc := NewJoinSessionUseCase(repo)
	err := uc.Execute(context.Background(), JoinSessionInput{SessionID: "s1", ProfileID: "p1"})
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("Execute = %v, want ErrPersistence", err)
	}
	if errors.Is(err, session.ErrSkillTooLow) {
		t.Error("a failed level lookup must not read as a skill rejection")
	}
	if ok, _ := repo.IsOnRoster(context.Background(), "s1", "p1"); ok {
		t.Error("no roster write may happen when the level lookup fails")
	}
}

func TestCreateSessionAllowsMissingSport(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := NewCreateSessionUseCase(repo)

	created, err := uc.Execute(context.Background(), CreateSessionInput{
		Title:     "Open Kickabout",
		HostID:    "host-1",
		StartTime: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if created[0].SportID != "" {
		t.Errorf("SportID = %q, want empty passed through for the store to null out", created[0].SportID)
	}
}

type fakeCache struct {
	store map[string]string
	sets  int
}

func newFakeCache() *fakeCache { return &fakeCache{store: make(map[string]string)} }

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.store[key]
	if !ok {
		return "", cacheport.ErrMiss
	}
	return v, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.sets++
	f.store[key] = value
	return nil
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) (int64, error) {
	var n int64
	for _, k := range keys {
		if _, ok := f.store[k]; ok {
			delete(f.store, k)
			n++
		}
	}
	return n, nil
}

func (f *fakeCache) Ping(ctx context.Context) error { return nil }

func (f *fakeCache) Close() error { return nil }

func TestListUpcomingCollapsesSeries(t *testing.T) {
	seriesA := "series-a"
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeSessionRepo()
	repo.upcoming = []session.Session{
		{ID: "one-off", StartTime: now.Add(2 * time.Hour)},
		{ID: "a1", IsRecurring: true, SeriesID: &seriesA, StartTime: now.Add(24 * time.Hour)},
		{ID: "a2", IsRecurring: true, SeriesID: &seriesA, StartTime: now.Add(8 * 24 * time.Hour)},
		{ID: "a3", IsRecurring: true, SeriesID: &seriesA, StartTime: now.Add(15 * 24 * time.Hour)},
	}

	uc := NewListUpcomingUseCase(repo, nil)
	got, err := uc.Execute(context.Background(), now)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (one-off + nearest series instance)", len(got))
	}
	if got[0].ID != "one-off" || got[1].ID != "a1" {
		t.Errorf("got %q/%q, want one-off/a1", got[0].ID, got[1].ID)
	}
}

func TestListUpcomingCachesResult(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeSessionRepo()
	repo.upcoming = []session.Session{{ID: "s1", StartTime: now.Add(time.Hour)}}
	cache := newFakeCache()

	uc := NewListUpcomingUseCase(repo, cache)
	if _, err := uc.Execute(context.Background(), now); err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	// Second call must come from the cache even if the store changes underneath.
	repo.upcomingErr = errors.New("db down")
	got, err := uc.Execute(context.Background(), now)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if len(got) != 1 || got[0].ID != "s1" {
		t.Errorf("cached result = %v", got)
	}
}
