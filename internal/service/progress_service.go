package service

import (
	"team_tracker_backend/internal/model"
	"team_tracker_backend/internal/repository"
	"team_tracker_backend/internal/util"
)

// ProgressService 目标与成员进度报告，每次读取实时统计
type ProgressService struct {
	GoalRepo   *repository.GoalRepository
	TaskRepo   *repository.TaskRepository
	MemberRepo *repository.TeamMemberRepository
	Now        Clock
}

func NewProgressService(
	goalRepo *repository.GoalRepository,
	taskRepo *repository.TaskRepository,
	memberRepo *repository.TeamMemberRepository,
) *ProgressService {
	return &ProgressService{
		GoalRepo:   goalRepo,
		TaskRepo:   taskRepo,
		MemberRepo: memberRepo,
		Now:        SystemClock,
	}
}

func (s *ProgressService) GoalProgress(goalID uint) (*model.GoalProgressReport, error) {
	goal, err := s.GoalRepo.FindByID(goalID)
	if err != nil {
		return nil, translateNotFound(err, util.ErrGoalNotFound)
	}

	counts, err := s.TaskRepo.CountByStatusForGoal(goal.ID)
	if err != nil {
		return nil, err
	}

	metrics := GoalMetricsFromCounts(counts)
	schedule := EvaluateSchedule(goal, metrics, s.Now())

	return &model.GoalProgressReport{
		Goal:               model.GoalView{Goal: *goal, GoalMetrics: metrics},
		TotalTasks:         metrics.TaskCount,
		CompletedTasks:     metrics.CompletedTaskCount,
		InProgressTasks:    counts[model.TaskInProgress],
		BlockedTasks:       counts[model.TaskBlocked],
		ProgressPercentage: metrics.ProgressPercentage,
		OnTrack:            schedule.OnTrack,
		DaysRemaining:      schedule.DaysRemaining,
	}, nil
}

func (s *ProgressService) MemberProgress(memberID uint) (*model.MemberProgressReport, error) {
	member, err := s.MemberRepo.FindByID(memberID)
	if err != nil {
		return nil, translateNotFound(err, util.ErrTeamMemberNotFound)
	}

	counts, err := s.TaskRepo.CountByStatusForAssignee(member.ID)
	if err != nil {
		return nil, err
	}

	overdue, err := s.TaskRepo.CountOverdueForAssignee(member.ID, s.Now())
	if err != nil {
		return nil, err
	}

	return &model.MemberProgressReport{
		TeamMember:    *member,
		MemberMetrics: MemberMetricsFromCounts(counts, overdue),
	}, nil
}
