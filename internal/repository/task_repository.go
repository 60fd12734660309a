package repository

import (
	"team_tracker_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

// TaskFilter 任务列表过滤条件，nil 表示不过滤
type TaskFilter struct {
	GoalID     *uint
	AssignedTo *uint
	Status     *model.TaskStatus
	Priority   *model.TaskPriority
	Skip       int
	Limit      int
}

type statusCount struct {
	Status model.TaskStatus
	Count  int64
}

type goalStatusCount struct {
	GoalID uint
	Status model.TaskStatus
	Count  int64
}

func (r *TaskRepository) Create(task *model.Task) error {
	return r.DB.Create(task).Error
}

func (r *TaskRepository) FindByID(id uint) (*model.Task, error) {
	var task model.Task
	err := r.DB.First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Update(task *model.Task) error {
	return r.DB.Save(task).Error
}

func (r *TaskRepository) List(filter TaskFilter) ([]model.Task, error) {
	var tasks []model.Task
	query := r.DB.Model(&model.Task{})

	if filter.GoalID != nil {
		query = query.Where("goal_id = ?", *filter.GoalID)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}

	err := query.Order("created_at DESC").Order("id DESC").
		Offset(filter.Skip).Limit(filter.Limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindByGoalID(goalID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.DB.Where("goal_id = ?", goalID).Order("id").Find(&tasks).Error
	return tasks, err
}

// FindByAssignee 成员的任务，按截止日期升序
func (r *TaskRepository) FindByAssignee(memberID uint, status *model.TaskStatus) ([]model.Task, error) {
	var tasks []model.Task
	query := r.DB.Where("assigned_to = ?", memberID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("due_date ASC").Order("id").Find(&tasks).Error
	return tasks, err
}

// DeleteCascade 删除任务及其状态更新
func (r *TaskRepository) DeleteCascade(id uint) ([]uint, error) {
	var removed []uint
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.StatusUpdate{}).Where("task_id = ?", id).Pluck("id", &removed).Error; err != nil {
			return err
		}
		if len(removed) > 0 {
			if err := tx.Where("id IN ?", removed).Delete(&model.StatusUpdate{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.Task{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (r *TaskRepository) countByStatus(query *gorm.DB) (model.TaskStatusCounts, error) {
	var rows []statusCount
	err := query.Model(&model.Task{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(model.TaskStatusCounts, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountByStatusForGoal 统计目标下各状态的任务数
func (r *TaskRepository) CountByStatusForGoal(goalID uint) (model.TaskStatusCounts, error) {
	return r.countByStatus(r.DB.Where("goal_id = ?", goalID))
}

// CountByStatusForGoals 列表页一次查询全部目标的统计
func (r *TaskRepository) CountByStatusForGoals(goalIDs []uint) (map[uint]model.TaskStatusCounts, error) {
	result := make(map[uint]model.TaskStatusCounts, len(goalIDs))
	if len(goalIDs) == 0 {
		return result, nil
	}

	var rows []goalStatusCount
	err := r.DB.Model(&model.Task{}).
		Select("goal_id, status, COUNT(*) AS count").
		Where("goal_id IN ?", goalIDs).
		Group("goal_id, status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if result[row.GoalID] == nil {
			result[row.GoalID] = make(model.TaskStatusCounts)
		}
		result[row.GoalID][row.Status] = row.Count
	}
	return result, nil
}

// CountByStatusForAssignee 统计成员被指派任务的各状态数量
func (r *TaskRepository) CountByStatusForAssignee(memberID uint) (model.TaskStatusCounts, error) {
	return r.countByStatus(r.DB.Where("assigned_to = ?", memberID))
}

// CountOverdueForAssignee 截止日期早于 now 且未完成的任务数
func (r *TaskRepository) CountOverdueForAssignee(memberID uint, now time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Task{}).
		Where("assigned_to = ? AND due_date IS NOT NULL AND due_date < ? AND status <> ?",
			memberID, now, model.TaskCompleted).
		Count(&count).Error
	return count, err
}
