package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"team_tracker_backend/internal/config"
	"team_tracker_backend/internal/util"
	"team_tracker_backend/pkg/logger"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider 定义通用存储接口
type StorageProvider interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
	GetURL(filename string) string
}

// LocalStorageProvider 本地存储实现
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, filename)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", err
	}

	return p.GetURL(filename), nil
}

func (p *LocalStorageProvider) GetURL(filename string) string {
	return "/reports/" + filename
}

// MinioStorageProvider MinIO存储实现
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *MinioStorageProvider) GetURL(filename string) string {
	return "/" + p.Config.MinioBucket + "/" + filename
}

// StorageService 周报归档
type StorageService struct {
	Provider StorageProvider
	enabled  bool
}

func NewStorageService(cfg *config.Config) *StorageService {
	var provider StorageProvider
	if cfg.Storage.Type == util.StorageMinio {
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err != nil {
			logger.Log.Warn("Failed to init minio storage, falling back to local", zap.Error(err))
		} else {
			provider = p
		}
	}

	if provider == nil {
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}

	return &StorageService{Provider: provider, enabled: cfg.Storage.ArchiveSummaries}
}

// NewStorageServiceWithProvider 直接注入实现（测试、MCP 复用）
func NewStorageServiceWithProvider(provider StorageProvider, enabled bool) *StorageService {
	return &StorageService{Provider: provider, enabled: enabled}
}

func (s *StorageService) Enabled() bool {
	return s != nil && s.enabled && s.Provider != nil
}

// ArchiveSummary 将周报保存为 markdown，返回可访问的地址
func (s *StorageService) ArchiveSummary(ctx context.Context, summary *PeriodSummary, now time.Time) (string, error) {
	member := "team"
	if summary.TeamMemberID != nil {
		member = fmt.Sprintf("member-%d", *summary.TeamMemberID)
	}
	filename := fmt.Sprintf("summaries/%s/%s_%s_%d.md",
		member,
		summary.StartDate.Format(util.DateFormat),
		summary.EndDate.Format(util.DateFormat),
		now.Unix(),
	)

	var buf bytes.Buffer
	title := "Team"
	if summary.TeamMember != nil {
		title = *summary.TeamMember
	}
	fmt.Fprintf(&buf, "# Weekly summary: %s\n\n", title)
	fmt.Fprintf(&buf, "- Period: %s to %s\n", summary.StartDate.Format(util.DateFormat), summary.EndDate.Format(util.DateFormat))
	fmt.Fprintf(&buf, "- Status updates: %d\n", summary.StatusCount)
	fmt.Fprintf(&buf, "- Generated: %s\n\n", now.Format(time.RFC3339))
	buf.WriteString(summary.Summary)
	buf.WriteString("\n")

	return s.Provider.Upload(ctx, filename, bytes.NewReader(buf.Bytes()), int64(buf.Len()), "text/markdown")
}
