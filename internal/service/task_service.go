package service

import (
	"context"
	"team_tracker_backend/internal/model"
	"team_tracker_backend/internal/repository"
	"team_tracker_backend/internal/util"
	"time"
)

type TaskService struct {
	TaskRepo   *repository.TaskRepository
	GoalRepo   *repository.GoalRepository
	MemberRepo *repository.TeamMemberRepository
	UpdateRepo *repository.StatusUpdateRepository
	Sync       *IndexSyncService
	Now        Clock
}

func NewTaskService(
	taskRepo *repository.TaskRepository,
	goalRepo *repository.GoalRepository,
	memberRepo *repository.TeamMemberRepository,
	updateRepo *repository.StatusUpdateRepository,
	sync *IndexSyncService,
) *TaskService {
	return &TaskService{
		TaskRepo:   taskRepo,
		GoalRepo:   goalRepo,
		MemberRepo: memberRepo,
		UpdateRepo: updateRepo,
		Sync:       sync,
		Now:        SystemClock,
	}
}

type CreateTaskRequest struct {
	GoalID      uint               `json:"goal_id" binding:"required"`
	Title       string             `json:"title" binding:"required,min=1,max=200"`
	Description string             `json:"description"`
	AssignedTo  *uint              `json:"assigned_to"`
	Status      model.TaskStatus   `json:"status" binding:"omitempty,oneof=todo in_progress completed blocked cancelled"`
	Priority    model.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	DueDate     *time.Time         `json:"due_date"`
}

// UpdateTaskRequest AssignedTo 为 0 表示取消指派
type UpdateTaskRequest struct {
	GoalID      *uint               `json:"goal_id"`
	Title       *string             `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string             `json:"description"`
	AssignedTo  *uint               `json:"assigned_to"`
	Status      *model.TaskStatus   `json:"status" binding:"omitempty,oneof=todo in_progress completed blocked cancelled"`
	Priority    *model.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	DueDate     *time.Time          `json:"due_date"`
}

func (s *TaskService) ensureGoal(id uint) error {
	if _, err := s.GoalRepo.FindByID(id); err != nil {
		return translateNotFound(err, util.ErrGoalNotFound)
	}
	return nil
}

func (s *TaskService) ensureMember(id uint) error {
	if _, err := s.MemberRepo.FindByID(id); err != nil {
		return translateNotFound(err, util.ErrTeamMemberNotFound)
	}
	return nil
}

func (s *TaskService) Create(req CreateTaskRequest) (*model.TaskView, error) {
	if err := s.ensureGoal(req.GoalID); err != nil {
		return nil, err
	}
	if req.AssignedTo != nil {
		if err := s.ensureMember(*req.AssignedTo); err != nil {
			return nil, err
		}
	}

	task := &model.Task{
		GoalID:      req.GoalID,
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Priority:    req.Priority,
		DueDate:     utcPtr(req.DueDate),
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}

	status := req.Status
	if status == "" {
		status = model.TaskTodo
	}
	task.SetStatus(status, s.Now())

	if err := s.TaskRepo.Create(task); err != nil {
		return nil, err
	}
	return &model.TaskView{Task: *task}, nil
}

func (s *TaskService) find(id uint) (*model.Task, error) {
	task, err := s.TaskRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err, util.ErrTaskNotFound)
	}
	return task, nil
}

// Get 任务详情：所属目标、负责人、更新数量与最近 5 条状态更新
func (s *TaskService) Get(id uint) (*model.TaskDetail, error) {
	task, err := s.find(id)
	if err != nil {
		return nil, err
	}

	counts, err := s.UpdateRepo.CountByTaskIDs([]uint{task.ID})
	if err != nil {
		return nil, err
	}

	recent, err := s.UpdateRepo.RecentByTask(task.ID, util.RecentUpdatesLimit)
	if err != nil {
		return nil, err
	}

	detail := &model.TaskDetail{
		TaskView:      model.TaskView{Task: *task, UpdateCount: counts[task.ID]},
		RecentUpdates: recent,
	}

	goal, err := s.GoalRepo.FindByID(task.GoalID)
	if err != nil {
		return nil, err
	}
	goalCounts, err := s.TaskRepo.CountByStatusForGoal(goal.ID)
	if err != nil {
		return nil, err
	}
	detail.Goal = &model.GoalView{Goal: *goal, GoalMetrics: GoalMetricsFromCounts(goalCounts)}

	if task.AssignedTo != nil {
		member, err := s.MemberRepo.FindByID(*task.AssignedTo)
		if err != nil {
			return nil, err
		}
		detail.Assignee = member
	}

	return detail, nil
}

func (s *TaskService) views(tasks []model.Task) ([]model.TaskView, error) {
	ids := make([]uint, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	counts, err := s.UpdateRepo.CountByTaskIDs(ids)
	if err != nil {
		return nil, err
	}

	views := make([]model.TaskView, len(tasks))
	for i, t := range tasks {
		views[i] = model.TaskView{Task: t, UpdateCount: counts[t.ID]}
	}
	return views, nil
}

func (s *TaskService) List(filter repository.TaskFilter) ([]model.TaskView, error) {
	filter.Skip, filter.Limit = util.ClampPage(filter.Skip, filter.Limit)
	tasks, err := s.TaskRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return s.views(tasks)
}

// AssignedTo 成员被指派的任务，按截止日期升序
func (s *TaskService) AssignedTo(memberID uint, status *model.TaskStatus) ([]model.TaskView, error) {
	if err := s.ensureMember(memberID); err != nil {
		return nil, err
	}
	tasks, err := s.TaskRepo.FindByAssignee(memberID, status)
	if err != nil {
		return nil, err
	}
	return s.views(tasks)
}

func (s *TaskService) Update(id uint, req UpdateTaskRequest) (*model.TaskView, error) {
	task, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if req.GoalID != nil && *req.GoalID != task.GoalID {
		if err := s.ensureGoal(*req.GoalID); err != nil {
			return nil, err
		}
		task.GoalID = *req.GoalID
	}
	if req.AssignedTo != nil {
		if *req.AssignedTo == 0 {
			task.AssignedTo = nil
		} else {
			if err := s.ensureMember(*req.AssignedTo); err != nil {
				return nil, err
			}
			assignee := *req.AssignedTo
			task.AssignedTo = &assignee
		}
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = utcPtr(req.DueDate)
	}
	if req.Status != nil {
		task.SetStatus(*req.Status, s.Now())
	}

	if err := s.TaskRepo.Update(task); err != nil {
		return nil, err
	}

	views, err := s.views([]model.Task{*task})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Delete 删除任务及其状态更新
func (s *TaskService) Delete(ctx context.Context, id uint) error {
	removed, err := s.TaskRepo.DeleteCascade(id)
	if err != nil {
		return translateNotFound(err, util.ErrTaskNotFound)
	}
	s.Sync.OnDelete(ctx, removed...)
	return nil
}
