package repository

import (
	"team_tracker_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatusUpdateRepository struct {
	DB *gorm.DB
}

func NewStatusUpdateRepository(db *gorm.DB) *StatusUpdateRepository {
	return &StatusUpdateRepository{DB: db}
}

// StatusUpdateFilter 状态更新列表过滤条件
type StatusUpdateFilter struct {
	TeamMemberID *uint
	TaskID       *uint
	StartDate    *time.Time
	EndDate      *time.Time
	Skip         int
	Limit        int
}

type taskUpdateCount struct {
	TaskID uint
	Count  int64
}

func (r *StatusUpdateRepository) Create(update *model.StatusUpdate) error {
	return r.DB.Omit(clause.Associations).Create(update).Error
}

func (r *StatusUpdateRepository) Update(update *model.StatusUpdate) error {
	return r.DB.Omit(clause.Associations).Save(update).Error
}

func (r *StatusUpdateRepository) FindByID(id uint) (*model.StatusUpdate, error) {
	var update model.StatusUpdate
	err := r.DB.Preload("TeamMember").First(&update, id).Error
	if err != nil {
		return nil, err
	}
	return &update, nil
}

// FindByIDs 批量加载（含成员），结果顺序不保证
func (r *StatusUpdateRepository) FindByIDs(ids []uint) ([]model.StatusUpdate, error) {
	var updates []model.StatusUpdate
	if len(ids) == 0 {
		return updates, nil
	}
	err := r.DB.Preload("TeamMember").Where("id IN ?", ids).Find(&updates).Error
	return updates, err
}

func (r *StatusUpdateRepository) Delete(id uint) error {
	result := r.DB.Delete(&model.StatusUpdate{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List 按日期倒序（最新在前）
func (r *StatusUpdateRepository) List(filter StatusUpdateFilter) ([]model.StatusUpdate, error) {
	var updates []model.StatusUpdate
	query := r.DB.Preload("TeamMember")

	if filter.TeamMemberID != nil {
		query = query.Where("team_member_id = ?", *filter.TeamMemberID)
	}
	if filter.TaskID != nil {
		query = query.Where("task_id = ?", *filter.TaskID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	err := query.Order("date DESC").Order("id DESC").
		Offset(filter.Skip).Limit(filter.Limit).
		Find(&updates).Error
	return updates, err
}

// FindInWindow 时间窗口内的全部状态更新，保持入库顺序
func (r *StatusUpdateRepository) FindInWindow(start, end time.Time, memberID *uint) ([]model.StatusUpdate, error) {
	var updates []model.StatusUpdate
	query := r.DB.Preload("TeamMember").Where("date >= ? AND date <= ?", start, end)
	if memberID != nil {
		query = query.Where("team_member_id = ?", *memberID)
	}
	err := query.Order("id").Find(&updates).Error
	return updates, err
}

// RecentByTask 任务最近的 n 条状态更新
func (r *StatusUpdateRepository) RecentByTask(taskID uint, n int) ([]model.StatusUpdate, error) {
	var updates []model.StatusUpdate
	err := r.DB.Where("task_id = ?", taskID).
		Order("date DESC").Order("id DESC").
		Limit(n).
		Find(&updates).Error
	return updates, err
}

// CountByTaskIDs 每个任务的状态更新数
func (r *StatusUpdateRepository) CountByTaskIDs(taskIDs []uint) (map[uint]int64, error) {
	result := make(map[uint]int64, len(taskIDs))
	if len(taskIDs) == 0 {
		return result, nil
	}

	var rows []taskUpdateCount
	err := r.DB.Model(&model.StatusUpdate{}).
		Select("task_id, COUNT(*) AS count").
		Where("task_id IN ?", taskIDs).
		Group("task_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.TaskID] = row.Count
	}
	return result, nil
}

func (r *StatusUpdateRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.StatusUpdate{}).Count(&count).Error
	return count, err
}

// ForEachBatch 按主键顺序分批遍历全部状态更新（含成员）
func (r *StatusUpdateRepository) ForEachBatch(batchSize int, fn func(batch []model.StatusUpdate) error) error {
	var updates []model.StatusUpdate
	return r.DB.Preload("TeamMember").
		FindInBatches(&updates, batchSize, func(tx *gorm.DB, _ int) error {
			return fn(updates)
		}).Error
}
