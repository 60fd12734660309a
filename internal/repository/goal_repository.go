package repository

import (
	"team_tracker_backend/internal/model"

	"gorm.io/gorm"
)

// GoalRepository 处理目标的数据访问
type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

// Create 创建目标
func (r *GoalRepository) Create(goal *model.Goal) error {
	return r.DB.Create(goal).Error
}

// Update 保存目标的全部字段（包括置空的日期）
func (r *GoalRepository) Update(goal *model.Goal) error {
	return r.DB.Save(goal).Error
}

// FindByID 根据ID查找目标
func (r *GoalRepository) FindByID(id uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.First(&goal, id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// List 按创建时间倒序分页，可按状态过滤
func (r *GoalRepository) List(status *model.GoalStatus, skip, limit int) ([]model.Goal, error) {
	var goals []model.Goal
	query := r.DB.Model(&model.Goal{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at DESC").Order("id DESC").
		Offset(skip).Limit(limit).
		Find(&goals).Error
	return goals, err
}

// DeleteCascade 删除目标、其下任务以及任务的状态更新
func (r *GoalRepository) DeleteCascade(id uint) ([]uint, error) {
	var removed []uint
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var taskIDs []uint
		if err := tx.Model(&model.Task{}).Where("goal_id = ?", id).Pluck("id", &taskIDs).Error; err != nil {
			return err
		}

		if len(taskIDs) > 0 {
			if err := tx.Model(&model.StatusUpdate{}).Where("task_id IN ?", taskIDs).Pluck("id", &removed).Error; err != nil {
				return err
			}
			if len(removed) > 0 {
				if err := tx.Where("id IN ?", removed).Delete(&model.StatusUpdate{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("goal_id = ?", id).Delete(&model.Task{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.Goal{}, id)
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
