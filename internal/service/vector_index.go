package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"team_tracker_backend/internal/config"
	"team_tracker_backend/internal/util"
	"unicode"
)

// VectorIndex 状态更新的语义索引
type VectorIndex interface {
	Upsert(ctx context.Context, id string, text string, metadata map[string]interface{}) error
	Delete(ctx context.Context, ids ...string) error
	Query(ctx context.Context, text string, limit int) ([]IndexHit, error)
	Count(ctx context.Context) (int, error)
}

// IndexHit 检索命中；Distance 为 nil 表示索引未返回距离
type IndexHit struct {
	ID       string
	Text     string
	Metadata map[string]interface{}
	Distance *float64
}

// NewVectorIndex 按配置选择索引实现
func NewVectorIndex(cfg config.IndexConfig, embedder Embedder) (VectorIndex, error) {
	switch cfg.Provider {
	case util.IndexChroma:
		idx, err := NewChromaIndex(cfg, embedder)
		if err != nil {
			return nil, err
		}
		return idx, nil
	case util.IndexMemory, "":
		return NewMemoryIndex(), nil
	default:
		return nil, fmt.Errorf("unsupported index provider %q", cfg.Provider)
	}
}

// MemoryIndex 进程内词袋索引，用于本地开发与测试
type MemoryIndex struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

type memoryItem struct {
	text     string
	metadata map[string]interface{}
	terms    map[string]float64
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{items: make(map[string]memoryItem)}
}

func (m *MemoryIndex) Upsert(_ context.Context, id string, text string, metadata map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id] = memoryItem{text: text, metadata: metadata, terms: termFrequencies(text)}
	return nil
}

func (m *MemoryIndex) Delete(_ context.Context, ids ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.items, id)
	}
	return nil
}

func (m *MemoryIndex) Query(_ context.Context, text string, limit int) ([]IndexHit, error) {
	query := termFrequencies(text)

	m.mu.RLock()
	hits := make([]IndexHit, 0, len(m.items))
	for id, item := range m.items {
		d := 1 - cosineSimilarity(query, item.terms)
		hits = append(hits, IndexHit{ID: id, Text: item.text, Metadata: item.metadata, Distance: &d})
	}
	m.mu.RUnlock()

	sort.SliceStable(hits, func(i, j int) bool {
		if *hits[i].Distance == *hits[j].Distance {
			return hits[i].ID < hits[j].ID
		}
		return *hits[i].Distance < *hits[j].Distance
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (m *MemoryIndex) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items), nil
}

func termFrequencies(text string) map[string]float64 {
	terms := make(map[string]float64)
	for _, word := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		terms[word]++
	}
	return terms
}

func cosineSimilarity(a, b map[string]float64) float64 {
	var dot, na, nb float64
	for k, v := range a {
		na += v * v
		dot += v * b[k]
	}
	for _, v := range b {
		nb += v * v
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
