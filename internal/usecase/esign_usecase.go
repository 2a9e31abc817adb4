package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"esignatures-go/internal/config"
	"esignatures-go/internal/domain/entity"
	"esignatures-go/internal/domain/repository"
	"esignatures-go/internal/infrastructure/redis"
)

const (
	// Redis keys for the template cache
	templateListKey   = "esignatures:templates"
	templateKeyPrefix = "esignatures:template:"
)

// templateCache is the subset of the redis client the usecase needs
type templateCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type EsignUsecase interface {
	ListTemplates(ctx context.Context) ([]interface{}, error)
	QueryTemplate(ctx context.Context, templateID string) (map[string]interface{}, error)
	SendContract(ctx context.Context, req *entity.SendContractRequest) (map[string]interface{}, error)
	QueryContract(ctx context.Context, contractID string) (map[string]interface{}, error)
}

type esignUsecase struct {
	repo     repository.EsignRepository
	cache    templateCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewEsignUsecase(cfg *config.Config, repo repository.EsignRepository, redisClient *redis.RedisClient, logger *zap.Logger) EsignUsecase {
	u := &esignUsecase{
		repo:     repo,
		cacheTTL: cfg.Redis.TemplateCacheTTL,
		logger:   logger,
	}
	if redisClient != nil && cfg.Redis.TemplateCacheTTL > 0 {
		u.cache = redisClient
	}
	return u
}

func (u *esignUsecase) ListTemplates(ctx context.Context) ([]interface{}, error) {
	var templates []interface{}
	if u.readCache(ctx, templateListKey, &templates) {
		return templates, nil
	}

	templates, err := u.repo.ListTemplates(ctx)
	if err != nil {
		u.logger.Error("Failed to list templates", zap.Error(err))
		return nil, err
	}

	u.logger.Info("Successfully listed templates", zap.Int("count", len(templates)))
	u.writeCache(ctx, templateListKey, templates)
	return templates, nil
}

func (u *esignUsecase) QueryTemplate(ctx context.Context, templateID string) (map[string]interface{}, error) {
	key := templateKeyPrefix + templateID

	var template map[string]interface{}
	if u.readCache(ctx, key, &template) {
		return template, nil
	}

	template, err := u.repo.QueryTemplate(ctx, templateID)
	if err != nil {
		u.logger.Error("Failed to query template",
			zap.String("template_id", templateID),
			zap.Error(err),
		)
		return nil, err
	}

	u.writeCache(ctx, key, template)
	return template, nil
}

func (u *esignUsecase) SendContract(ctx context.Context, req *entity.SendContractRequest) (map[string]interface{}, error) {
	u.logger.Info("Sending contract",
		zap.String("template_id", req.TemplateID),
		zap.Int("signers_count", len(req.Signers)),
		zap.Bool("test", req.Test),
	)

	response, err := u.repo.SendContract(ctx, req)
	if err != nil {
		u.logger.Error("Failed to send contract",
			zap.String("template_id", req.TemplateID),
			zap.Error(err),
		)
		return nil, err
	}

	u.logger.Info("Contract sent",
		zap.String("template_id", req.TemplateID),
		zap.Any("status", response["status"]),
	)
	return response, nil
}

func (u *esignUsecase) QueryContract(ctx context.Context, contractID string) (map[string]interface{}, error) {
	contract, err := u.repo.QueryContract(ctx, contractID)
	if err != nil {
		u.logger.Error("Failed to query contract",
			zap.String("contract_id", contractID),
			zap.Error(err),
		)
		return nil, err
	}
	return contract, nil
}

// readCache reports whether key was found and decoded into dst
func (u *esignUsecase) readCache(ctx context.Context, key string, dst interface{}) bool {
	if u.cache == nil {
		return false
	}

	cached, err := u.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			u.logger.Warn("Failed to read template cache", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal([]byte(cached), dst); err != nil {
		u.logger.Warn("Discarding malformed template cache entry", zap.String("key", key), zap.Error(err))
		return false
	}

	u.logger.Debug("Template cache hit", zap.String("key", key))
	return true
}

func (u *esignUsecase) writeCache(ctx context.Context, key string, value interface{}) {
	if u.cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	// Don't fail the request, just log warning
	if err := u.cache.Set(ctx, key, string(data), u.cacheTTL); err != nil {
		u.logger.Warn("Failed to write template cache", zap.String("key", key), zap.Error(err))
	}
}
