package services

import (
	"context"

	"github.com/henkobit/inventario/internal/logger"
)

// ArticleCountReader counts the article master.
type ArticleCountReader interface {
	Count(ctx context.Context) (int64, error)
}

// ArticleRemover empties the article master.
type ArticleRemover interface {
	DeleteAll(ctx context.Context) error
}

// ArticleService exposes master-table maintenance operations.
type ArticleService struct {
	reader  ArticleCountReader
	remover ArticleRemover
	cache   CacheInvalidator
}

// NewArticleService creates a new ArticleService. cache is optional.
func NewArticleService(reader ArticleCountReader, remover ArticleRemover, cache CacheInvalidator) *ArticleService {
	return &ArticleService{reader: reader, remover: remover, cache: cache}
}

// Count returns the number of articles in the master.
func (svc *ArticleService) Count(ctx context.Context) (int64, error) {
	return svc.reader.Count(ctx)
}

// Clear empties the master and drops cached lookups.
func (svc *ArticleService) Clear(ctx context.Context) error {
	if err := svc.remover.DeleteAll(ctx); err != nil {
		logger.Log.Errorw("failed to clear article master", "err", err)
		return err
	}
	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx); err != nil {
			logger.Log.Warnw("failed to invalidate article cache after clear", "err", err)
		}
	}
	return nil
}
