package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"esignatures-go/internal/config"
	"esignatures-go/internal/domain/entity"
	"esignatures-go/internal/infrastructure/redis"
)

type fakeRepo struct {
	listCalls     int
	templateCalls int
	templates     []interface{}
	template      map[string]interface{}
	contract      map[string]interface{}
	err           error
	sent          *entity.SendContractRequest
}

func (f *fakeRepo) ListTemplates(context.Context) ([]interface{}, error) {
	f.listCalls++
	return f.templates, f.err
}

func (f *fakeRepo) QueryTemplate(context.Context, string) (map[string]interface{}, error) {
	f.templateCalls++
	return f.template, f.err
}

func (f *fakeRepo) SendContract(_ context.Context, req *entity.SendContractRequest) (map[string]interface{}, error) {
	f.sent = req
	return f.contract, f.err
}

func (f *fakeRepo) QueryContract(context.Context, string) (map[string]interface{}, error) {
	return f.contract, f.err
}

type memoryCache struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", redis.ErrCacheMiss
	}
	return v, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	m.values[key] = value.(string)
	m.ttls[key] = ttl
	return nil
}

func newCachedUsecase(repo *fakeRepo, cache templateCache) *esignUsecase {
	return &esignUsecase{repo: repo, cache: cache, cacheTTL: time.Minute, logger: zap.NewNop()}
}

func TestNewEsignUsecase_NoRedisDisablesCache(t *testing.T) {
	cfg := &config.Config{Redis: config.RedisConfig{TemplateCacheTTL: time.Minute}}
	u := NewEsignUsecase(cfg, &fakeRepo{}, nil, zap.NewNop()).(*esignUsecase)
	assert.Nil(t, u.cache)
}

func TestListTemplates_UsesCache(t *testing.T) {
	repo := &fakeRepo{templates: []interface{}{"t1", "t2"}}
	cache := newMemoryCache()
	u := newCachedUsecase(repo, cache)
	ctx := context.Background()

	first, err := u.ListTemplates(ctx)
	require.NoError(t, err)
	second, err := u.ListTemplates(ctx)
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"t1", "t2"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, time.Minute, cache.ttls[templateListKey])
}

func TestQueryTemplate_UsesCachePerID(t *testing.T) {
	repo := &fakeRepo{template: map[string]interface{}{"template_id": "tpl-1"}}
	cache := newMemoryCache()
	u := newCachedUsecase(repo, cache)
	ctx := context.Background()

	_, err := u.QueryTemplate(ctx, "tpl-1")
	require.NoError(t, err)
	got, err := u.QueryTemplate(ctx, "tpl-1")
	require.NoError(t, err)

	assert.Equal(t, "tpl-1", got["template_id"])
	assert.Equal(t, 1, repo.templateCalls)
	assert.Contains(t, cache.values, templateKeyPrefix+"tpl-1")
}

func TestQueryTemplate_MalformedCacheEntryFallsBack(t *testing.T) {
	repo := &fakeRepo{template: map[string]interface{}{"template_id": "tpl-1"}}
	cache := newMemoryCache()
	cache.values[templateKeyPrefix+"tpl-1"] = "not json"
	u := newCachedUsecase(repo, cache)

	got, err := u.QueryTemplate(context.Background(), "tpl-1")
	require.NoError(t, err)
	assert.Equal(t, "tpl-1", got["template_id"])
	assert.Equal(t, 1, repo.templateCalls)
}

func TestErrorsAreNotCached(t *testing.T) {
	repo := &fakeRepo{err: errors.New("upstream down")}
	cache := newMemoryCache()
	u := newCachedUsecase(repo, cache)

	_, err := u.ListTemplates(context.Background())
	assert.Error(t, err)
	assert.Empty(t, cache.values)
}

func TestSendContract_PassesThrough(t *testing.T) {
	repo := &fakeRepo{contract: map[string]interface{}{"status": "queued"}}
	u := newCachedUsecase(repo, nil)
	req := &entity.SendContractRequest{TemplateID: "tpl-1"}

	resp, err := u.SendContract(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "queued", resp["status"])
	assert.Same(t, req, repo.sent)
}

func TestQueryContract_Error(t *testing.T) {
	boom := errors.New("boom")
	u := newCachedUsecase(&fakeRepo{err: boom}, nil)

	_, err := u.QueryContract(context.Background(), "c-1")
	assert.ErrorIs(t, err, boom)
}
