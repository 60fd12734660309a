package service

import (
	"context"
	"strings"
	"team_tracker_backend/internal/model"
	"team_tracker_backend/internal/repository"
	"team_tracker_backend/internal/util"
	"time"
)

// StatusUpdateService 状态更新写入关系库后同步到向量索引
type StatusUpdateService struct {
	UpdateRepo *repository.StatusUpdateRepository
	MemberRepo *repository.TeamMemberRepository
	TaskRepo   *repository.TaskRepository
	Sync       *IndexSyncService
	Now        Clock
}

func NewStatusUpdateService(
	updateRepo *repository.StatusUpdateRepository,
	memberRepo *repository.TeamMemberRepository,
	taskRepo *repository.TaskRepository,
	sync *IndexSyncService,
) *StatusUpdateService {
	return &StatusUpdateService{
		UpdateRepo: updateRepo,
		MemberRepo: memberRepo,
		TaskRepo:   taskRepo,
		Sync:       sync,
		Now:        SystemClock,
	}
}

type CreateStatusUpdateRequest struct {
	TeamMemberID uint       `json:"team_member_id" binding:"required"`
	TaskID       *uint      `json:"task_id"`
	StatusText   string     `json:"status_text" binding:"required"`
	Date         *time.Time `json:"date"`
}

// UpdateStatusUpdateRequest TaskID 为 0 表示解除与任务的关联
type UpdateStatusUpdateRequest struct {
	TaskID     *uint      `json:"task_id"`
	StatusText *string    `json:"status_text"`
	Date       *time.Time `json:"date"`
}

func (s *StatusUpdateService) ensureTask(id uint) error {
	if _, err := s.TaskRepo.FindByID(id); err != nil {
		return translateNotFound(err, util.ErrTaskNotFound)
	}
	return nil
}

func (s *StatusUpdateService) Create(ctx context.Context, req CreateStatusUpdateRequest) (*model.StatusUpdate, error) {
	if strings.TrimSpace(req.StatusText) == "" {
		return nil, util.ErrEmptyStatusText
	}

	member, err := s.MemberRepo.FindByID(req.TeamMemberID)
	if err != nil {
		return nil, translateNotFound(err, util.ErrTeamMemberNotFound)
	}
	if req.TaskID != nil {
		if err := s.ensureTask(*req.TaskID); err != nil {
			return nil, err
		}
	}

	date := s.Now()
	if req.Date != nil {
		date = req.Date.UTC()
	}

	update := &model.StatusUpdate{
		TeamMemberID: member.ID,
		TaskID:       req.TaskID,
		StatusText:   req.StatusText,
		Date:         date,
	}
	if err := s.UpdateRepo.Create(update); err != nil {
		return nil, err
	}
	update.TeamMember = member

	s.Sync.OnCreate(ctx, update, member.Name)
	return update, nil
}

func (s *StatusUpdateService) Get(id uint) (*model.StatusUpdate, error) {
	update, err := s.UpdateRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err, util.ErrStatusUpdateNotFound)
	}
	return update, nil
}

func (s *StatusUpdateService) List(filter repository.StatusUpdateFilter) ([]model.StatusUpdate, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, util.ErrInvalidDateRange
	}
	filter.StartDate = utcPtr(filter.StartDate)
	filter.EndDate = utcPtr(filter.EndDate)
	filter.Skip, filter.Limit = util.ClampPage(filter.Skip, filter.Limit)
	return s.UpdateRepo.List(filter)
}

func (s *StatusUpdateService) Update(ctx context.Context, id uint, req UpdateStatusUpdateRequest) (*model.StatusUpdate, error) {
	update, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.StatusText != nil {
		if strings.TrimSpace(*req.StatusText) == "" {
			return nil, util.ErrEmptyStatusText
		}
		update.StatusText = *req.StatusText
	}
	if req.TaskID != nil {
		if *req.TaskID == 0 {
			update.TaskID = nil
		} else {
			if err := s.ensureTask(*req.TaskID); err != nil {
				return nil, err
			}
			taskID := *req.TaskID
			update.TaskID = &taskID
		}
	}
	if req.Date != nil {
		update.Date = req.Date.UTC()
	}

	if err := s.UpdateRepo.Update(update); err != nil {
		return nil, err
	}

	s.Sync.OnUpdate(ctx, update, update.MemberName())
	return update, nil
}

func (s *StatusUpdateService) Delete(ctx context.Context, id uint) error {
	if err := s.UpdateRepo.Delete(id); err != nil {
		return translateNotFound(err, util.ErrStatusUpdateNotFound)
	}
	s.Sync.OnDelete(ctx, id)
	return nil
}
