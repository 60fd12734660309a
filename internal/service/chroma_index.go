package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"team_tracker_backend/internal/config"
	"team_tracker_backend/pkg/tracing"
	"time"

	chroma "github.com/amikos-tech/chroma-go"
	"github.com/amikos-tech/chroma-go/types"
	"go.opentelemetry.io/otel/attribute"
)

// ChromaIndex 基于 chroma-go 客户端，向量由 Embedder 计算
type ChromaIndex struct {
	client     *chroma.Client
	collection string
	embedFunc  *embeddingFunc
	timeout    time.Duration

	mu   sync.Mutex
	coll *chroma.Collection
}

func NewChromaIndex(cfg config.IndexConfig, embedder Embedder) (*ChromaIndex, error) {
	client, err := chroma.NewClient(strings.TrimRight(cfg.URL, "/"))
	if err != nil {
		return nil, fmt.Errorf("create chroma client: %w", err)
	}
	return &ChromaIndex{
		client:     client,
		collection: cfg.Collection,
		embedFunc:  &embeddingFunc{embedder: embedder},
		timeout:    cfg.Timeout(),
	}, nil
}

// collectionFor 首次使用时 get_or_create 集合（余弦距离）并缓存
func (c *ChromaIndex) collectionFor(ctx context.Context) (*chroma.Collection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.coll == nil {
		coll, err := c.client.CreateCollection(ctx, c.collection, map[string]interface{}{}, true, c.embedFunc, types.COSINE)
		if err != nil {
			return nil, fmt.Errorf("get or create collection: %w", err)
		}
		c.coll = coll
	}
	return c.coll, nil
}

func (c *ChromaIndex) Upsert(ctx context.Context, id string, text string, metadata map[string]interface{}) (err error) {
	ctx, span := tracing.StartSpan(ctx, "index.upsert", attribute.String("index.id", id))
	defer func() { tracing.EndSpan(span, err) }()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	coll, err := c.collectionFor(ctx)
	if err != nil {
		return err
	}

	vec, err := c.embedFunc.EmbedQuery(ctx, text)
	if err != nil {
		return fmt.Errorf("embed document: %w", err)
	}

	_, err = coll.Upsert(ctx, []*types.Embedding{vec}, []map[string]interface{}{metadata}, []string{text}, []string{id})
	if err != nil {
		return fmt.Errorf("chroma upsert: %w", err)
	}
	return nil
}

func (c *ChromaIndex) Delete(ctx context.Context, ids ...string) (err error) {
	if len(ids) == 0 {
		return nil
	}

	ctx, span := tracing.StartSpan(ctx, "index.delete", attribute.Int("index.ids", len(ids)))
	defer func() { tracing.EndSpan(span, err) }()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	coll, err := c.collectionFor(ctx)
	if err != nil {
		return err
	}
	if _, err = coll.Delete(ctx, ids, nil, nil); err != nil {
		return fmt.Errorf("chroma delete: %w", err)
	}
	return nil
}

func (c *ChromaIndex) Query(ctx context.Context, text string, limit int) (hits []IndexHit, err error) {
	ctx, span := tracing.StartSpan(ctx, "index.query", attribute.Int("index.limit", limit))
	defer func() { tracing.EndSpan(span, err) }()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	coll, err := c.collectionFor(ctx)
	if err != nil {
		return nil, err
	}

	res, err := coll.Query(ctx, []string{text}, int32(limit), nil, nil,
		[]types.QueryEnum{types.IDocuments, types.IMetadatas, types.IDistances})
	if err != nil {
		return nil, fmt.Errorf("chroma query: %w", err)
	}
	if res == nil || len(res.Ids) == 0 {
		return nil, nil
	}

	for i, id := range res.Ids[0] {
		hit := IndexHit{ID: id}
		if len(res.Documents) > 0 && i < len(res.Documents[0]) {
			hit.Text = res.Documents[0][i]
		}
		if len(res.Metadatas) > 0 && i < len(res.Metadatas[0]) {
			hit.Metadata = res.Metadatas[0][i]
		}
		if len(res.Distances) > 0 && i < len(res.Distances[0]) {
			d := float64(res.Distances[0][i])
			hit.Distance = &d
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

func (c *ChromaIndex) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	coll, err := c.collectionFor(ctx)
	if err != nil {
		return 0, err
	}
	n, err := coll.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("chroma count: %w", err)
	}
	return int(n), nil
}

// embeddingFunc 把 Embedder 适配为 chroma-go 的 EmbeddingFunction
type embeddingFunc struct {
	embedder Embedder
}

func (e *embeddingFunc) EmbedDocuments(ctx context.Context, texts []string) ([]*types.Embedding, error) {
	out := make([]*types.Embedding, 0, len(texts))
	for _, text := range texts {
		emb, err := e.EmbedQuery(ctx, text)
		if err != nil {
			return nil, err
		}
		out = append(out, emb)
	}
	return out, nil
}

func (e *embeddingFunc) EmbedQuery(ctx context.Context, text string) (*types.Embedding, error) {
	vec, err := e.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	f32 := make([]float32, len(vec))
	for i, v := range vec {
		f32[i] = float32(v)
	}
	return types.NewEmbeddingFromFloat32(f32), nil
}

func (e *embeddingFunc) EmbedRecords(ctx context.Context, records []*types.Record, force bool) error {
	return types.EmbedRecordsDefaultImpl(e, ctx, records, force)
}
