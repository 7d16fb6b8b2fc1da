package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/models"
)

// ArticleCacheRepository caches positive EAN lookups in Redis so repeated
// scans of the same barcode skip the master table. Only hits are cached;
// a miss must always go to the database.
type ArticleCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewArticleCacheRepository(client *redis.Client, expiration time.Duration) *ArticleCacheRepository {
	return &ArticleCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func cacheKey(ean string) string {
	return fmt.Sprintf("articulo:ean:%s", ean)
}

// GetByEAN returns the cached article for the barcode, or nil on a miss.
func (r *ArticleCacheRepository) GetByEAN(ctx context.Context, ean string) (*models.Article, error) {
	key := cacheKey(ean)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", "",
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var article models.Article
	if err := json.Unmarshal([]byte(val), &article); err != nil {
		logger.Log.Errorw("failed to decode cached article", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", article.CodigoArticulo,
		"error", nil,
	)

	return &article, nil
}

// SetByEAN caches an article under its barcode with the repository TTL.
func (r *ArticleCacheRepository) SetByEAN(ctx context.Context, article *models.Article) error {
	key := cacheKey(article.EAN)

	data, err := json.Marshal(article)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops every cached lookup. Called after imports and master
// clears so stale articles cannot outlive the tables they came from.
func (r *ArticleCacheRepository) Invalidate(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, cacheKey("*"), 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Log.Errorw("cache scan failed", "error", err)
		return err
	}

	if len(keys) > 0 {
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			logger.Log.Errorw("cache invalidation failed", "keys", len(keys), "error", err)
			return err
		}
	}

	logger.Log.Infow("article cache invalidated", "keys", len(keys))
	return nil
}
