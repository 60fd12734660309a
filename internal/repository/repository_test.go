package repository

import (
	"testing"
	"team_tracker_backend/internal/model"
	"team_tracker_backend/internal/testutil"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	members *TeamMemberRepository
	goals   *GoalRepository
	tasks   *TaskRepository
	updates *StatusUpdateRepository
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewTestDB(t)
	return &fixture{
		members: NewTeamMemberRepository(db),
		goals:   NewGoalRepository(db),
		tasks:   NewTaskRepository(db),
		updates: NewStatusUpdateRepository(db),
	}
}

func (f *fixture) member(t *testing.T, email string) *model.TeamMember {
	t.Helper()
	m := &model.TeamMember{Name: email, Email: email}
	require.NoError(t, f.members.Create(m))
	return m
}

func (f *fixture) goal(t *testing.T) *model.Goal {
	t.Helper()
	g := &model.Goal{Title: "goal", Status: model.GoalNotStarted}
	require.NoError(t, f.goals.Create(g))
	return g
}

func (f *fixture) task(t *testing.T, goalID uint, assignee *uint, status model.TaskStatus, due *time.Time) *model.Task {
	t.Helper()
	task := &model.Task{GoalID: goalID, Title: "task", AssignedTo: assignee, Status: status, Priority: model.PriorityMedium, DueDate: due}
	require.NoError(t, f.tasks.Create(task))
	return task
}

func (f *fixture) update(t *testing.T, memberID uint, taskID *uint, date time.Time) *model.StatusUpdate {
	t.Helper()
	u := &model.StatusUpdate{TeamMemberID: memberID, TaskID: taskID, StatusText: "text", Date: date}
	require.NoError(t, f.updates.Create(u))
	return u
}

var now = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func TestTaskRepository_Counts(t *testing.T) {
	f := newFixture(t)
	ana := f.member(t, "ana@example.com")
	g1, g2 := f.goal(t), f.goal(t)

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	f.task(t, g1.ID, &ana.ID, model.TaskCompleted, &past)
	f.task(t, g1.ID, &ana.ID, model.TaskInProgress, &past)
	f.task(t, g1.ID, nil, model.TaskBlocked, nil)
	f.task(t, g2.ID, &ana.ID, model.TaskTodo, &future)

	counts, err := f.tasks.CountByStatusForGoal(g1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts.Total())
	assert.Equal(t, int64(1), counts[model.TaskBlocked])

	bulk, err := f.tasks.CountByStatusForGoals([]uint{g1.ID, g2.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, int64(3), bulk[g1.ID].Total())
	assert.Equal(t, int64(1), bulk[g2.ID][model.TaskTodo])
	assert.Nil(t, bulk[999])

	mine, err := f.tasks.CountByStatusForAssignee(ana.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), mine.Total())

	overdue, err := f.tasks.CountOverdueForAssignee(ana.ID, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), overdue)
}

func TestTeamMemberRepository_DeleteCascade(t *testing.T) {
	f := newFixture(t)
	ana := f.member(t, "ana@example.com")
	bo := f.member(t, "bo@example.com")
	g := f.goal(t)
	anaTask := f.task(t, g.ID, &ana.ID, model.TaskTodo, nil)
	boTask := f.task(t, g.ID, &bo.ID, model.TaskTodo, nil)

	u1 := f.update(t, ana.ID, nil, now)
	u2 := f.update(t, bo.ID, &anaTask.ID, now)
	u3 := f.update(t, bo.ID, &boTask.ID, now)

	removed, err := f.members.DeleteCascade(ana.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{u1.ID, u2.ID}, removed)

	_, err = f.tasks.FindByID(anaTask.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = f.updates.FindByID(u3.ID)
	assert.NoError(t, err)

	_, err = f.members.DeleteCascade(ana.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGoalRepository_DeleteCascade(t *testing.T) {
	f := newFixture(t)
	ana := f.member(t, "ana@example.com")
	g := f.goal(t)
	other := f.goal(t)
	task := f.task(t, g.ID, nil, model.TaskTodo, nil)
	kept := f.task(t, other.ID, nil, model.TaskTodo, nil)
	u := f.update(t, ana.ID, &task.ID, now)

	removed, err := f.goals.DeleteCascade(g.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{u.ID}, removed)

	_, err = f.tasks.FindByID(kept.ID)
	assert.NoError(t, err)
	_, err = f.goals.FindByID(g.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStatusUpdateRepository_Queries(t *testing.T) {
	f := newFixture(t)
	ana := f.member(t, "ana@example.com")
	bo := f.member(t, "bo@example.com")
	g := f.goal(t)
	task := f.task(t, g.ID, nil, model.TaskTodo, nil)

	a := f.update(t, ana.ID, &task.ID, now.AddDate(0, 0, -2))
	b := f.update(t, bo.ID, nil, now.AddDate(0, 0, -1))
	c := f.update(t, ana.ID, &task.ID, now)

	start, end := now.AddDate(0, 0, -2), now.AddDate(0, 0, -1)
	window, err := f.updates.FindInWindow(start, end, nil)
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, a.ID, window[0].ID)
	assert.Equal(t, "bo@example.com", window[1].MemberName())

	window, err = f.updates.FindInWindow(start, now, &ana.ID)
	require.NoError(t, err)
	assert.Len(t, window, 2)

	counts, err := f.updates.CountByTaskIDs([]uint{task.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[task.ID])

	recent, err := f.updates.RecentByTask(task.ID, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, c.ID, recent[0].ID)

	found, err := f.updates.FindByIDs([]uint{b.ID, 12345})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.NotNil(t, found[0].TeamMember)

	var seen []uint
	require.NoError(t, f.updates.ForEachBatch(2, func(batch []model.StatusUpdate) error {
		for _, u := range batch {
			seen = append(seen, u.ID)
			assert.NotNil(t, u.TeamMember)
		}
		return nil
	}))
	assert.Equal(t, []uint{a.ID, b.ID, c.ID}, seen)

	require.NoError(t, f.updates.Delete(b.ID))
	assert.ErrorIs(t, f.updates.Delete(b.ID), gorm.ErrRecordNotFound)
}

func TestTeamMemberRepository_UniqueEmail(t *testing.T) {
	f := newFixture(t)
	f.member(t, "ana@example.com")

	err := f.members.Create(&model.TeamMember{Name: "dup", Email: "ana@example.com"})
	assert.Error(t, err)

	found, err := f.members.FindByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", found.Name)
}
