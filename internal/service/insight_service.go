package service

import (
	"context"
	"errors"
	"team_tracker_backend/internal/model"
	"team_tracker_backend/internal/repository"
	"team_tracker_backend/internal/util"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	HealthHealthy  = "healthy"
	HealthDegraded = "degraded"
)

// InsightService 语义检索问答与周期总结
type InsightService struct {
	UpdateRepo *repository.StatusUpdateRepository
	MemberRepo *repository.TeamMemberRepository
	Index      VectorIndex
	Oracle     Oracle
	Storage    *StorageService
	Sync       *IndexSyncService
	log        *zap.Logger
	Now        Clock
}

func NewInsightService(
	updateRepo *repository.StatusUpdateRepository,
	memberRepo *repository.TeamMemberRepository,
	index VectorIndex,
	oracle Oracle,
	storage *StorageService,
	sync *IndexSyncService,
	log *zap.Logger,
) *InsightService {
	return &InsightService{
		UpdateRepo: updateRepo,
		MemberRepo: memberRepo,
		Index:      index,
		Oracle:     oracle,
		Storage:    storage,
		Sync:       sync,
		log:        log,
		Now:        SystemClock,
	}
}

type SearchRequest struct {
	Query string `json:"query" binding:"required,min=1"`
	Limit int    `json:"limit" binding:"omitempty,min=1,max=100"`
}

type SearchHit struct {
	StatusUpdate   model.StatusUpdate `json:"status_update"`
	RelevanceScore float64            `json:"relevance_score"`
}

type SearchResult struct {
	Query           string      `json:"query"`
	Answer          string      `json:"answer"`
	RelevantUpdates []SearchHit `json:"relevant_updates"`
	Count           int         `json:"count"`
}

type PeriodSummaryRequest struct {
	StartDate    time.Time  `json:"start_date" binding:"required"`
	EndDate      *time.Time `json:"end_date"`
	TeamMemberID *uint      `json:"team_member_id"`
}

type PeriodSummary struct {
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	TeamMemberID *uint     `json:"team_member_id,omitempty"`
	TeamMember   *string   `json:"team_member"`
	Summary      string    `json:"summary"`
	StatusCount  int       `json:"status_count"`
	ReportURL    string    `json:"report_url,omitempty"`
}

type HealthReport struct {
	OllamaAvailable  bool   `json:"ollama_available"`
	VectorStoreCount int    `json:"vector_store_count"`
	IndexAvailable   bool   `json:"index_available"`
	Status           string `json:"status"`
}

// Search 索引召回 -> 关系库回填 -> 生成回答；索引中已不存在于库里的 id 直接丢弃
func (s *InsightService) Search(ctx context.Context, query string, limit int) (*SearchResult, error) {
	if limit <= 0 {
		limit = util.DefaultSearchLimit
	}
	if limit > util.MaxSearchLimit {
		limit = util.MaxSearchLimit
	}

	hits, err := s.Index.Query(ctx, query, limit)
	if err != nil {
		s.log.Warn("Vector index query failed, answering without context", zap.Error(err))
		hits = nil
	}

	ids := make([]uint, 0, len(hits))
	for _, hit := range hits {
		if id, ok := util.ParseID(hit.ID); ok {
			ids = append(ids, id)
		}
	}

	updates, err := s.UpdateRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]model.StatusUpdate, len(updates))
	for _, u := range updates {
		byID[u.ID] = u
	}

	result := &SearchResult{Query: query, RelevantUpdates: []SearchHit{}}
	entries := make([]ContextEntry, 0, len(hits))
	for _, hit := range hits {
		id, ok := util.ParseID(hit.ID)
		if !ok {
			continue
		}
		u, ok := byID[id]
		if !ok {
			continue
		}

		score := 1.0
		if hit.Distance != nil {
			score = 1 - *hit.Distance
		}
		result.RelevantUpdates = append(result.RelevantUpdates, SearchHit{StatusUpdate: u, RelevanceScore: score})

		entry := EntryFromUpdate(&u)
		entry.Metadata = hit.Metadata
		entries = append(entries, entry)
	}
	result.Count = len(result.RelevantUpdates)

	answer, err := s.Oracle.Generate(ctx, AnswerPrompt(query, BuildContext(entries)))
	if err != nil {
		s.log.Warn("Failed to generate answer", zap.Error(err))
		answer = answerError(err)
	}
	result.Answer = answer

	return result, nil
}

// PeriodSummary 直接按时间窗口查询关系库（不经过索引）后生成总结
func (s *InsightService) PeriodSummary(ctx context.Context, req PeriodSummaryRequest) (*PeriodSummary, error) {
	start := req.StartDate.UTC()
	end := start.AddDate(0, 0, util.SummaryWindowDays)
	if req.EndDate != nil {
		end = req.EndDate.UTC()
	}
	if end.Before(start) {
		return nil, util.ErrInvalidDateRange
	}

	summary := &PeriodSummary{
		StartDate:    start,
		EndDate:      end,
		TeamMemberID: req.TeamMemberID,
	}

	memberName := ""
	if req.TeamMemberID != nil {
		member, err := s.MemberRepo.FindByID(*req.TeamMemberID)
		switch {
		case err == nil:
			memberName = member.Name
			summary.TeamMember = &memberName
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	updates, err := s.UpdateRepo.FindInWindow(start, end, req.TeamMemberID)
	if err != nil {
		return nil, err
	}

	if len(updates) == 0 {
		summary.Summary = noUpdatesMessage
		return summary, nil
	}

	entries := make([]ContextEntry, len(updates))
	for i := range updates {
		entries[i] = EntryFromUpdate(&updates[i])
	}
	summary.StatusCount = len(updates)

	text, err := s.Oracle.Generate(ctx, SummaryPrompt(BuildContext(entries), memberName))
	if err != nil {
		s.log.Warn("Failed to generate summary", zap.Error(err))
		summary.Summary = summaryError(err)
		return summary, nil
	}
	summary.Summary = text

	if s.Storage.Enabled() {
		url, err := s.Storage.ArchiveSummary(ctx, summary, s.Now())
		if err != nil {
			s.log.Warn("Failed to archive summary", zap.Error(err))
		} else {
			summary.ReportURL = url
		}
	}

	return summary, nil
}

func (s *InsightService) Resync(ctx context.Context) (*ResyncResult, error) {
	return s.Sync.Resync(ctx)
}

// Health 生成服务可达即为 healthy；索引计数失败只影响 index_available
func (s *InsightService) Health(ctx context.Context) *HealthReport {
	report := &HealthReport{
		OllamaAvailable: s.Oracle.Reachable(ctx),
		IndexAvailable:  true,
	}

	count, err := s.Index.Count(ctx)
	if err != nil {
		s.log.Warn("Failed to count vector index items", zap.Error(err))
		report.IndexAvailable = false
	}
	report.VectorStoreCount = count

	report.Status = HealthDegraded
	if report.OllamaAvailable {
		report.Status = HealthHealthy
	}
	return report
}
