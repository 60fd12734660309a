package service

import (
	"context"
	"team_tracker_backend/internal/model"
	"team_tracker_backend/internal/repository"
	"team_tracker_backend/internal/util"
	"time"
)

// GoalService 目标的增删改查，读取时附带实时计算的进度
type GoalService struct {
	GoalRepo   *repository.GoalRepository
	TaskRepo   *repository.TaskRepository
	UpdateRepo *repository.StatusUpdateRepository
	Sync       *IndexSyncService
	Now        Clock
}

func NewGoalService(
	goalRepo *repository.GoalRepository,
	taskRepo *repository.TaskRepository,
	updateRepo *repository.StatusUpdateRepository,
	sync *IndexSyncService,
) *GoalService {
	return &GoalService{
		GoalRepo:   goalRepo,
		TaskRepo:   taskRepo,
		UpdateRepo: updateRepo,
		Sync:       sync,
		Now:        SystemClock,
	}
}

type CreateGoalRequest struct {
	Title       string           `json:"title" binding:"required,min=1,max=200"`
	Description string           `json:"description"`
	Status      model.GoalStatus `json:"status" binding:"omitempty,oneof=not_started in_progress completed on_hold cancelled"`
	StartDate   *time.Time       `json:"start_date"`
	TargetDate  *time.Time       `json:"target_date"`
}

type UpdateGoalRequest struct {
	Title       *string           `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string           `json:"description"`
	Status      *model.GoalStatus `json:"status" binding:"omitempty,oneof=not_started in_progress completed on_hold cancelled"`
	StartDate   *time.Time        `json:"start_date"`
	TargetDate  *time.Time        `json:"target_date"`
}

func (s *GoalService) Create(req CreateGoalRequest) (*model.GoalView, error) {
	goal := &model.Goal{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   utcPtr(req.StartDate),
		TargetDate:  utcPtr(req.TargetDate),
	}

	status := req.Status
	if status == "" {
		status = model.GoalNotStarted
	}
	goal.SetStatus(status, s.Now())

	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}
	return &model.GoalView{Goal: *goal, GoalMetrics: GoalMetricsFromCounts(nil)}, nil
}

func (s *GoalService) find(id uint) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err, util.ErrGoalNotFound)
	}
	return goal, nil
}

func (s *GoalService) view(goal *model.Goal) (*model.GoalView, error) {
	counts, err := s.TaskRepo.CountByStatusForGoal(goal.ID)
	if err != nil {
		return nil, err
	}
	return &model.GoalView{Goal: *goal, GoalMetrics: GoalMetricsFromCounts(counts)}, nil
}

// Get 目标详情，包含任务列表及每个任务的状态更新数
func (s *GoalService) Get(id uint) (*model.GoalDetail, error) {
	goal, err := s.find(id)
	if err != nil {
		return nil, err
	}

	tasks, err := s.TaskRepo.FindByGoalID(goal.ID)
	if err != nil {
		return nil, err
	}

	counts := make(model.TaskStatusCounts)
	taskIDs := make([]uint, len(tasks))
	for i, t := range tasks {
		counts[t.Status]++
		taskIDs[i] = t.ID
	}

	updateCounts, err := s.UpdateRepo.CountByTaskIDs(taskIDs)
	if err != nil {
		return nil, err
	}

	views := make([]model.TaskView, len(tasks))
	for i, t := range tasks {
		views[i] = model.TaskView{Task: t, UpdateCount: updateCounts[t.ID]}
	}

	return &model.GoalDetail{
		GoalView: model.GoalView{Goal: *goal, GoalMetrics: GoalMetricsFromCounts(counts)},
		Tasks:    views,
	}, nil
}

func (s *GoalService) List(status *model.GoalStatus, skip, limit int) ([]model.GoalView, error) {
	skip, limit = util.ClampPage(skip, limit)
	goals, err := s.GoalRepo.List(status, skip, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	counts, err := s.TaskRepo.CountByStatusForGoals(ids)
	if err != nil {
		return nil, err
	}

	views := make([]model.GoalView, len(goals))
	for i, g := range goals {
		views[i] = model.GoalView{Goal: g, GoalMetrics: GoalMetricsFromCounts(counts[g.ID])}
	}
	return views, nil
}

func (s *GoalService) Update(id uint, req UpdateGoalRequest) (*model.GoalView, error) {
	goal, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.StartDate != nil {
		goal.StartDate = utcPtr(req.StartDate)
	}
	if req.TargetDate != nil {
		goal.TargetDate = utcPtr(req.TargetDate)
	}
	if req.Status != nil {
		goal.SetStatus(*req.Status, s.Now())
	}

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}
	return s.view(goal)
}

// Delete 级联删除目标下的任务及其状态更新
func (s *GoalService) Delete(ctx context.Context, id uint) error {
	removed, err := s.GoalRepo.DeleteCascade(id)
	if err != nil {
		return translateNotFound(err, util.ErrGoalNotFound)
	}
	s.Sync.OnDelete(ctx, removed...)
	return nil
}
