package service

import (
	"context"
	"strconv"
	"team_tracker_backend/internal/model"
	"team_tracker_backend/internal/repository"
	"team_tracker_backend/internal/util"
	"team_tracker_backend/pkg/monitoring"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	resyncLockKey = "tracker:index:resync"
	resyncLockTTL = 30 * time.Minute
	resyncBatch   = 200
)

// 仅在 value 与本实例写入的 token 一致时释放锁
var releaseLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// ResyncResult 全量同步结果
type ResyncResult struct {
	Message      string `json:"message"`
	TotalUpdates int64  `json:"total_updates"`
	SyncedCount  int    `json:"synced_count"`
}

// IndexSyncService 将状态更新镜像到向量索引；写索引失败只记录日志，不影响请求结果
type IndexSyncService struct {
	index   VectorIndex
	updates *repository.StatusUpdateRepository
	redis   *redis.Client
	log     *zap.Logger
	timeout time.Duration
}

func NewIndexSyncService(index VectorIndex, updates *repository.StatusUpdateRepository, rdb *redis.Client, log *zap.Logger, timeout time.Duration) *IndexSyncService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &IndexSyncService{
		index:   index,
		updates: updates,
		redis:   rdb,
		log:     log,
		timeout: timeout,
	}
}

func indexID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func indexMetadata(u *model.StatusUpdate, memberName string) map[string]interface{} {
	return map[string]interface{}{
		"team_member_id":   u.TeamMemberID,
		"team_member_name": memberName,
		"date":             u.Date.Format(util.TimeFormat),
	}
}

// detach 索引写入不随客户端断开而取消
func (s *IndexSyncService) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
}

func (s *IndexSyncService) upsert(ctx context.Context, op string, u *model.StatusUpdate, memberName string) {
	ctx, cancel := s.detach(ctx)
	defer cancel()

	err := s.index.Upsert(ctx, indexID(u.ID), u.StatusText, indexMetadata(u, memberName))
	monitoring.ObserveIndexSync(op, err)
	if err != nil {
		s.log.Warn("Failed to sync status update to vector index",
			zap.String("op", op),
			zap.Uint("status_update_id", u.ID),
			zap.Error(err),
		)
	}
}

func (s *IndexSyncService) OnCreate(ctx context.Context, u *model.StatusUpdate, memberName string) {
	s.upsert(ctx, "create", u, memberName)
}

func (s *IndexSyncService) OnUpdate(ctx context.Context, u *model.StatusUpdate, memberName string) {
	s.upsert(ctx, "update", u, memberName)
}

// OnDelete 单条删除与级联删除共用
func (s *IndexSyncService) OnDelete(ctx context.Context, ids ...uint) {
	if len(ids) == 0 {
		return
	}

	ctx, cancel := s.detach(ctx)
	defer cancel()

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = indexID(id)
	}

	err := s.index.Delete(ctx, keys...)
	monitoring.ObserveIndexSync("delete", err)
	if err != nil {
		s.log.Warn("Failed to delete status updates from vector index",
			zap.Uints("status_update_ids", ids),
			zap.Error(err),
		)
	}
}

// Resync 顺序遍历全部状态更新并逐条 upsert，单条失败跳过
func (s *IndexSyncService) Resync(ctx context.Context) (*ResyncResult, error) {
	release, err := s.acquireLock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	total, err := s.updates.Count()
	if err != nil {
		return nil, err
	}

	synced := 0
	err = s.updates.ForEachBatch(resyncBatch, func(batch []model.StatusUpdate) error {
		for i := range batch {
			u := &batch[i]
			writeCtx, cancel := context.WithTimeout(ctx, s.timeout)
			err := s.index.Upsert(writeCtx, indexID(u.ID), u.StatusText, indexMetadata(u, u.MemberName()))
			cancel()

			monitoring.ObserveIndexSync("resync", err)
			if err != nil {
				s.log.Warn("Failed to resync status update",
					zap.Uint("status_update_id", u.ID),
					zap.Error(err),
				)
				continue
			}
			synced++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Vector store sync completed",
		zap.Int64("total_updates", total),
		zap.Int("synced_count", synced),
	)

	return &ResyncResult{
		Message:      "Vector store sync completed",
		TotalUpdates: total,
		SyncedCount:  synced,
	}, nil
}

// acquireLock 多实例部署时用 redis 防止重复全量同步；未配置 redis 时直接放行
func (s *IndexSyncService) acquireLock(ctx context.Context) (func(), error) {
	if s.redis == nil {
		return func() {}, nil
	}

	token := uuid.NewString()
	ok, err := s.redis.SetNX(ctx, resyncLockKey, token, resyncLockTTL).Result()
	if err != nil {
		// redis 不可用时不阻塞同步
		s.log.Warn("Failed to acquire resync lock, continuing without it", zap.Error(err))
		return func() {}, nil
	}
	if !ok {
		return nil, util.ErrResyncInProgress
	}

	return func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := releaseLockScript.Run(releaseCtx, s.redis, []string{resyncLockKey}, token).Err(); err != nil {
			s.log.Warn("Failed to release resync lock", zap.Error(err))
		}
	}, nil
}
