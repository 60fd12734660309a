package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"team_tracker_backend/internal/model"
	"team_tracker_backend/internal/repository"
	"team_tracker_backend/internal/service"
	"team_tracker_backend/internal/testutil"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubOracle struct {
	generate  func(ctx context.Context, prompt string) (string, error)
	reachable bool
}

func (o *stubOracle) Generate(ctx context.Context, prompt string) (string, error) {
	if o.generate == nil {
		return "generated", nil
	}
	return o.generate(ctx, prompt)
}

func (o *stubOracle) Reachable(ctx context.Context) bool {
	return o.reachable
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	router *gin.Engine
	oracle *stubOracle
	index  *service.MemoryIndex
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	memberRepo := repository.NewTeamMemberRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	updateRepo := repository.NewStatusUpdateRepository(db)

	index := service.NewMemoryIndex()
	oracle := &stubOracle{reachable: true}
	sync := service.NewIndexSyncService(index, updateRepo, nil, zap.NewNop(), time.Second)
	storage := service.NewStorageServiceWithProvider(nil, false)

	progress := service.NewProgressService(goalRepo, taskRepo, memberRepo)
	members := NewTeamMemberController(service.NewTeamMemberService(memberRepo, sync))
	goals := NewGoalController(service.NewGoalService(goalRepo, taskRepo, updateRepo, sync), progress)
	tasks := NewTaskController(service.NewTaskService(taskRepo, goalRepo, memberRepo, updateRepo, sync), progress)
	updates := NewStatusUpdateController(service.NewStatusUpdateService(updateRepo, memberRepo, taskRepo, sync))
	ai := NewAIController(service.NewInsightService(updateRepo, memberRepo, index, oracle, storage, sync, zap.NewNop()))
	health := NewHealthController(db, nil)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", health.HealthCheck)

	api.POST("/team-members", members.Create)
	api.GET("/team-members", members.List)
	api.GET("/team-members/:id", members.Get)
	api.PUT("/team-members/:id", members.Update)
	api.DELETE("/team-members/:id", members.Delete)

	api.POST("/goals", goals.Create)
	api.GET("/goals", goals.List)
	api.GET("/goals/:id", goals.Get)
	api.DELETE("/goals/:id", goals.Delete)
	api.GET("/goals/:id/progress", goals.Progress)

	api.POST("/tasks", tasks.Create)
	api.GET("/tasks", tasks.List)
	api.GET("/tasks/:id", tasks.Get)
	api.PUT("/tasks/:id", tasks.Update)
	api.GET("/tasks/member/:memberId/assigned", tasks.Assigned)
	api.GET("/tasks/member/:memberId/progress", tasks.MemberProgress)

	api.POST("/status-updates", updates.Create)
	api.GET("/status-updates", updates.List)
	api.GET("/status-updates/:id", updates.Get)
	api.DELETE("/status-updates/:id", updates.Delete)

	api.POST("/ai/search", ai.Search)
	api.POST("/ai/weekly-summary", ai.WeeklySummary)
	api.POST("/ai/sync-vector-store", ai.SyncVectorStore)
	api.GET("/ai/health-check", ai.HealthCheck)

	return &testServer{router: r, oracle: oracle, index: index}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func (s *testServer) createMember(t *testing.T, name, email string) model.TeamMember {
	t.Helper()
	w, env := s.do(t, http.MethodPost, "/api/team-members", gin.H{"name": name, "email": email, "role": "engineer"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[model.TeamMember](t, env)
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := decode[HealthReport](t, env)
	assert.Equal(t, "ok", report.Status)
	require.Len(t, report.Deps, 1)
	assert.Equal(t, "database:sqlite", report.Deps[0].Name)
	assert.Equal(t, "up", report.Deps[0].Status)
}

func TestListEndpoints_LimitValidation(t *testing.T) {
	s := newTestServer(t)
	s.createMember(t, "Dana", "dana@example.com")

	paths := []string{"/api/team-members", "/api/goals", "/api/tasks", "/api/status-updates"}
	tests := []struct {
		query string
		code  int
	}{
		{"", http.StatusOK},
		{"?limit=1", http.StatusOK},
		{"?limit=1000", http.StatusOK},
		{"?limit=0", http.StatusBadRequest},
		{"?limit=-1", http.StatusBadRequest},
		{"?limit=1001", http.StatusBadRequest},
		{"?limit=abc", http.StatusBadRequest},
		{"?skip=-1", http.StatusBadRequest},
	}

	for _, path := range paths {
		for _, tt := range tests {
			t.Run(path+tt.query, func(t *testing.T) {
				w, _ := s.do(t, http.MethodGet, path+tt.query, nil)
				assert.Equal(t, tt.code, w.Code, w.Body.String())
			})
		}
	}
}

func TestPageQuery_PageLimit(t *testing.T) {
	assert.Equal(t, 100, PageQuery{}.PageLimit())
	n := 7
	assert.Equal(t, 7, PageQuery{Limit: &n}.PageLimit())
}

func TestTeamMemberEndpoints(t *testing.T) {
	s := newTestServer(t)

	alice := s.createMember(t, "Alice", "alice@example.com")
	assert.NotZero(t, alice.ID)

	w, _ := s.do(t, http.MethodPost, "/api/team-members", gin.H{"name": "Other", "email": "alice@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/team-members", gin.H{"name": "Bad", "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := s.do(t, http.MethodPut, "/api/team-members/1", gin.H{"role": "lead"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "lead", decode[model.TeamMember](t, env).Role)

	w, _ = s.do(t, http.MethodGet, "/api/team-members/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/team-members/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/team-members?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodDelete, "/api/team-members/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, env = s.do(t, http.MethodGet, "/api/team-members", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]model.TeamMember](t, env))
}

func TestGoalAndTaskEndpoints(t *testing.T) {
	s := newTestServer(t)
	bob := s.createMember(t, "Bob", "bob@example.com")

	w, env := s.do(t, http.MethodPost, "/api/goals", gin.H{"title": "Ship v2"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	goal := decode[model.GoalView](t, env)
	assert.Equal(t, model.GoalNotStarted, goal.Status)

	w, _ = s.do(t, http.MethodPost, "/api/goals", gin.H{"title": "x", "status": "paused"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/tasks", gin.H{"goal_id": 42, "title": "orphan"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = s.do(t, http.MethodPost, "/api/tasks", gin.H{"goal_id": goal.ID, "title": "api", "assigned_to": bob.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	task := decode[model.TaskView](t, env)
	assert.Equal(t, model.TaskTodo, task.Status)

	w, _ = s.do(t, http.MethodPost, "/api/tasks", gin.H{"goal_id": goal.ID, "title": "docs"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = s.do(t, http.MethodPut, "/api/tasks/1", gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotNil(t, decode[model.TaskView](t, env).CompletedDate)

	w, env = s.do(t, http.MethodGet, "/api/goals/1/progress", nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := decode[model.GoalProgressReport](t, env)
	assert.Equal(t, int64(2), report.TotalTasks)
	assert.Equal(t, 50.0, report.ProgressPercentage)
	assert.True(t, report.OnTrack)

	w, env = s.do(t, http.MethodGet, "/api/tasks?goal_id=1&status=completed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.TaskView](t, env), 1)

	w, env = s.do(t, http.MethodGet, "/api/tasks/member/1/assigned", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.TaskView](t, env), 1)

	w, env = s.do(t, http.MethodGet, "/api/tasks/member/1/progress", nil)
	require.Equal(t, http.StatusOK, w.Code)
	member := decode[model.MemberProgressReport](t, env)
	assert.Equal(t, int64(1), member.AssignedTasks)
	assert.Equal(t, 100.0, member.CompletionRate)

	w, _ = s.do(t, http.MethodGet, "/api/tasks/member/9/progress", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodDelete, "/api/goals/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = s.do(t, http.MethodGet, "/api/tasks/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatusUpdateEndpoints(t *testing.T) {
	s := newTestServer(t)
	carol := s.createMember(t, "Carol", "carol@example.com")

	w, _ := s.do(t, http.MethodPost, "/api/status-updates", gin.H{"team_member_id": carol.ID, "status_text": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/status-updates", gin.H{"team_member_id": 77, "status_text": "hello"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env := s.do(t, http.MethodPost, "/api/status-updates", gin.H{
		"team_member_id": carol.ID,
		"status_text":    "wired the billing webhook",
		"date":           "2024-03-12T10:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	update := decode[model.StatusUpdate](t, env)

	count, err := s.index.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	w, env = s.do(t, http.MethodGet, "/api/status-updates?start_date=2024-03-11&end_date=2024-03-13", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.StatusUpdate](t, env), 1)

	w, _ = s.do(t, http.MethodGet, "/api/status-updates?start_date=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/status-updates?start_date=2024-03-13&end_date=2024-03-11", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(t, http.MethodGet, "/api/status-updates/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[model.StatusUpdate](t, env)
	require.NotNil(t, got.TeamMember)
	assert.Equal(t, "Carol", got.TeamMember.Name)

	w, _ = s.do(t, http.MethodDelete, "/api/status-updates/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	count, err = s.index.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	w, _ = s.do(t, http.MethodDelete, "/api/status-updates/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, uint(1), update.ID)
}

func TestAIEndpoints(t *testing.T) {
	s := newTestServer(t)
	dave := s.createMember(t, "Dave", "dave@example.com")

	for _, text := range []string{"migrated billing database", "reviewed onboarding docs"} {
		w, _ := s.do(t, http.MethodPost, "/api/status-updates", gin.H{
			"team_member_id": dave.ID,
			"status_text":    text,
			"date":           "2024-03-12T10:00:00Z",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var prompts []string
	s.oracle.generate = func(ctx context.Context, prompt string) (string, error) {
		prompts = append(prompts, prompt)
		return "Dave worked on billing.", nil
	}

	w, env := s.do(t, http.MethodPost, "/api/ai/search", gin.H{"query": "billing database", "limit": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[service.SearchResult](t, env)
	assert.Equal(t, "Dave worked on billing.", result.Answer)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "migrated billing database", result.RelevantUpdates[0].StatusUpdate.StatusText)
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "[Dave] on 2024-03-12 10:00:00")

	w, _ = s.do(t, http.MethodPost, "/api/ai/search", gin.H{"query": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(t, http.MethodPost, "/api/ai/weekly-summary", gin.H{"start_date": "2024-03-11T00:00:00Z"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	summary := decode[service.PeriodSummary](t, env)
	assert.Equal(t, 2, summary.StatusCount)
	assert.Equal(t, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), summary.EndDate)

	w, _ = s.do(t, http.MethodPost, "/api/ai/weekly-summary", gin.H{
		"start_date": "2024-03-11T00:00:00Z",
		"end_date":   "2024-03-01T00:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.oracle.generate = func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("model not loaded")
	}
	w, env = s.do(t, http.MethodPost, "/api/ai/weekly-summary", gin.H{"start_date": "2024-03-11T00:00:00Z"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(decode[service.PeriodSummary](t, env).Summary, "Error generating summary: "))

	w, env = s.do(t, http.MethodPost, "/api/ai/sync-vector-store", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resync := decode[service.ResyncResult](t, env)
	assert.Equal(t, int64(2), resync.TotalUpdates)
	assert.Equal(t, 2, resync.SyncedCount)

	s.oracle.reachable = false
	w, env = s.do(t, http.MethodGet, "/api/ai/health-check", nil)
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[service.HealthReport](t, env)
	assert.Equal(t, service.HealthDegraded, health.Status)
	assert.Equal(t, 2, health.VectorStoreCount)
	assert.True(t, health.IndexAvailable)
}
