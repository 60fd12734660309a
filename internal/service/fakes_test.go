package service

import (
	"context"
	"sync"
	"testing"
	"team_tracker_backend/internal/repository"
	"team_tracker_backend/internal/testutil"
	"time"

	"go.uber.org/zap"
)

type fakeOracle struct {
	GenerateFunc  func(ctx context.Context, prompt string) (string, error)
	ReachableFunc func(ctx context.Context) bool

	mu      sync.Mutex
	prompts []string
}

func (f *fakeOracle) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.GenerateFunc != nil {
		return f.GenerateFunc(ctx, prompt)
	}
	return "generated", nil
}

func (f *fakeOracle) Reachable(ctx context.Context) bool {
	if f.ReachableFunc != nil {
		return f.ReachableFunc(ctx)
	}
	return true
}

func (f *fakeOracle) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

type fakeIndex struct {
	UpsertFunc func(ctx context.Context, id, text string, metadata map[string]interface{}) error
	DeleteFunc func(ctx context.Context, ids ...string) error
	QueryFunc  func(ctx context.Context, text string, limit int) ([]IndexHit, error)
	CountFunc  func(ctx context.Context) (int, error)

	mu       sync.Mutex
	upserted []string
	deleted  []string
}

func (f *fakeIndex) Upsert(ctx context.Context, id, text string, metadata map[string]interface{}) error {
	f.mu.Lock()
	f.upserted = append(f.upserted, id)
	f.mu.Unlock()
	if f.UpsertFunc != nil {
		return f.UpsertFunc(ctx, id, text, metadata)
	}
	return nil
}

func (f *fakeIndex) Delete(ctx context.Context, ids ...string) error {
	f.mu.Lock()
	f.deleted = append(f.deleted, ids...)
	f.mu.Unlock()
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, ids...)
	}
	return nil
}

func (f *fakeIndex) Query(ctx context.Context, text string, limit int) ([]IndexHit, error) {
	if f.QueryFunc != nil {
		return f.QueryFunc(ctx, text, limit)
	}
	return nil, nil
}

func (f *fakeIndex) Count(ctx context.Context) (int, error) {
	if f.CountFunc != nil {
		return f.CountFunc(ctx)
	}
	return 0, nil
}

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type testEnv struct {
	members  *TeamMemberService
	goals    *GoalService
	tasks    *TaskService
	updates  *StatusUpdateService
	progress *ProgressService
	insight  *InsightService
	sync     *IndexSyncService

	index  *fakeIndex
	oracle *fakeOracle

	memberRepo *repository.TeamMemberRepository
	taskRepo   *repository.TaskRepository
	updateRepo *repository.StatusUpdateRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)
	log := zap.NewNop()

	memberRepo := repository.NewTeamMemberRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	updateRepo := repository.NewStatusUpdateRepository(db)

	index := &fakeIndex{}
	oracle := &fakeOracle{}
	syncSvc := NewIndexSyncService(index, updateRepo, nil, log, time.Second)

	env := &testEnv{
		members:    NewTeamMemberService(memberRepo, syncSvc),
		goals:      NewGoalService(goalRepo, taskRepo, updateRepo, syncSvc),
		tasks:      NewTaskService(taskRepo, goalRepo, memberRepo, updateRepo, syncSvc),
		updates:    NewStatusUpdateService(updateRepo, memberRepo, taskRepo, syncSvc),
		progress:   NewProgressService(goalRepo, taskRepo, memberRepo),
		insight:    NewInsightService(updateRepo, memberRepo, index, oracle, NewStorageServiceWithProvider(nil, false), syncSvc, log),
		sync:       syncSvc,
		index:      index,
		oracle:     oracle,
		memberRepo: memberRepo,
		taskRepo:   taskRepo,
		updateRepo: updateRepo,
	}
	env.goals.Now = fixedClock
	env.tasks.Now = fixedClock
	env.updates.Now = fixedClock
	env.progress.Now = fixedClock
	env.insight.Now = fixedClock
	return env
}

func uintPtr(v uint) *uint { return &v }
