package repository

import (
	"team_tracker_backend/internal/model"

	"gorm.io/gorm"
)

// TeamMemberRepository 团队成员数据访问
type TeamMemberRepository struct {
	DB *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{DB: db}
}

func (r *TeamMemberRepository) Create(member *model.TeamMember) error {
	return r.DB.Create(member).Error
}

func (r *TeamMemberRepository) FindByID(id uint) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.DB.First(&member, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *TeamMemberRepository) FindByEmail(email string) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.DB.Where("email = ?", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *TeamMemberRepository) List(skip, limit int) ([]model.TeamMember, error) {
	var members []model.TeamMember
	err := r.DB.Order("id").Offset(skip).Limit(limit).Find(&members).Error
	return members, err
}

func (r *TeamMemberRepository) Update(member *model.TeamMember) error {
	return r.DB.Save(member).Error
}

// DeleteCascade 删除成员及其状态更新、被指派的任务（以及这些任务下的状态更新）
// 返回被删除的状态更新 ID，供索引清理使用
func (r *TeamMemberRepository) DeleteCascade(id uint) ([]uint, error) {
	var removed []uint
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var taskIDs []uint
		if err := tx.Model(&model.Task{}).Where("assigned_to = ?", id).Pluck("id", &taskIDs).Error; err != nil {
			return err
		}

		query := tx.Model(&model.StatusUpdate{}).Where("team_member_id = ?", id)
		if len(taskIDs) > 0 {
			query = query.Or("task_id IN ?", taskIDs)
		}
		if err := query.Pluck("id", &removed).Error; err != nil {
			return err
		}

		if len(removed) > 0 {
			if err := tx.Where("id IN ?", removed).Delete(&model.StatusUpdate{}).Error; err != nil {
				return err
			}
		}
		if len(taskIDs) > 0 {
			if err := tx.Where("id IN ?", taskIDs).Delete(&model.Task{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.TeamMember{}, id)
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
