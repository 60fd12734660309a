package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"team_tracker_backend/internal/config"
	"team_tracker_backend/pkg/monitoring"
	"team_tracker_backend/pkg/tracing"
	"time"

	"github.com/ollama/ollama/api"
	"go.opentelemetry.io/otel/attribute"
)

// Oracle 文本生成服务
type Oracle interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Reachable(ctx context.Context) bool
}

// Embedder 文本向量化
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// AIService Ollama 客户端，同时实现 Oracle 与 Embedder
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *api.Client
	err    error
}

func NewAIService(cfg config.AIConfig) *AIService {
	s := &AIService{}
	s.UpdateConfig(cfg)
	return s
}

// UpdateConfig 配置热更新（模型、超时、地址），地址变化时重建客户端
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	client, err := newOllamaClient(cfg.BaseURL)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.client = client
	s.err = err
}

func newOllamaClient(baseURL string) (*api.Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid ollama url %q: %w", baseURL, err)
	}
	return api.NewClient(base, http.DefaultClient), nil
}

func (s *AIService) current() (config.AIConfig, *api.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config, s.client, s.err
}

func (s *AIService) Generate(ctx context.Context, prompt string) (answer string, err error) {
	cfg, client, err := s.current()
	start := time.Now()

	ctx, span := tracing.StartSpan(ctx, "oracle.generate", attribute.String("ai.model", cfg.Model))
	defer func() {
		monitoring.ObserveOracle("generate", start, err)
		tracing.EndSpan(span, err)
	}()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	stream := false
	var sb strings.Builder
	err = client.Generate(ctx, &api.GenerateRequest{
		Model:  cfg.Model,
		Prompt: prompt,
		Stream: &stream,
	}, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("AI API error: %w", err)
	}
	return sb.String(), nil
}

func (s *AIService) Embed(ctx context.Context, text string) (vec []float64, err error) {
	cfg, client, err := s.current()
	start := time.Now()

	ctx, span := tracing.StartSpan(ctx, "oracle.embed", attribute.String("ai.model", cfg.EmbeddingModel))
	defer func() {
		monitoring.ObserveOracle("embed", start, err)
		tracing.EndSpan(span, err)
	}()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	resp, err := client.Embeddings(ctx, &api.EmbeddingRequest{
		Model:  cfg.EmbeddingModel,
		Prompt: text,
	})
	if err != nil {
		return nil, fmt.Errorf("AI API error: %w", err)
	}
	if len(resp.Embedding) == 0 {
		return nil, fmt.Errorf("AI returned an empty embedding")
	}
	return resp.Embedding, nil
}

// Reachable 通过 /api/tags 判断服务是否可达
func (s *AIService) Reachable(ctx context.Context) bool {
	_, client, err := s.current()
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err = client.List(ctx)
	return err == nil
}
