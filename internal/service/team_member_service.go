package service

import (
	"context"
	"errors"
	"team_tracker_backend/internal/model"
	"team_tracker_backend/internal/repository"
	"team_tracker_backend/internal/util"

	"gorm.io/gorm"
)

type TeamMemberService struct {
	MemberRepo *repository.TeamMemberRepository
	Sync       *IndexSyncService
}

func NewTeamMemberService(memberRepo *repository.TeamMemberRepository, sync *IndexSyncService) *TeamMemberService {
	return &TeamMemberService{
		MemberRepo: memberRepo,
		Sync:       sync,
	}
}

type CreateTeamMemberRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Email string `json:"email" binding:"required,email,max=255"`
	Role  string `json:"role" binding:"max=100"`
}

// UpdateTeamMemberRequest 仅更新非空字段
type UpdateTeamMemberRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
	Role  *string `json:"role" binding:"omitempty,max=100"`
}

func (s *TeamMemberService) Create(req CreateTeamMemberRequest) (*model.TeamMember, error) {
	if err := s.checkEmailFree(req.Email, 0); err != nil {
		return nil, err
	}

	member := &model.TeamMember{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if err := s.MemberRepo.Create(member); err != nil {
		if isUniqueViolation(err) {
			return nil, util.ErrEmailRegistered
		}
		return nil, err
	}
	return member, nil
}

func (s *TeamMemberService) Get(id uint) (*model.TeamMember, error) {
	member, err := s.MemberRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err, util.ErrTeamMemberNotFound)
	}
	return member, nil
}

func (s *TeamMemberService) List(skip, limit int) ([]model.TeamMember, error) {
	skip, limit = util.ClampPage(skip, limit)
	return s.MemberRepo.List(skip, limit)
}

func (s *TeamMemberService) Update(id uint, req UpdateTeamMemberRequest) (*model.TeamMember, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != member.Email {
		if err := s.checkEmailFree(*req.Email, member.ID); err != nil {
			return nil, err
		}
		member.Email = *req.Email
	}
	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}

	if err := s.MemberRepo.Update(member); err != nil {
		if isUniqueViolation(err) {
			return nil, util.ErrEmailRegistered
		}
		return nil, err
	}
	return member, nil
}

// Delete 级联删除成员的状态更新与被指派任务，并清理索引
func (s *TeamMemberService) Delete(ctx context.Context, id uint) error {
	removed, err := s.MemberRepo.DeleteCascade(id)
	if err != nil {
		return translateNotFound(err, util.ErrTeamMemberNotFound)
	}
	s.Sync.OnDelete(ctx, removed...)
	return nil
}

func (s *TeamMemberService) checkEmailFree(email string, selfID uint) error {
	existing, err := s.MemberRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return util.ErrEmailRegistered
	}
	return nil
}
