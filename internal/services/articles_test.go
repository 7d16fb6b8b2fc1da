package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestArticleService_Count(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockArticleCountReader(ctrl)
	reader.EXPECT().Count(gomock.Any()).Return(int64(1234), nil)

	svc := NewArticleService(reader, NewMockArticleRemover(ctrl), nil)
	count, err := svc.Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(1234), count)
}

func TestArticleService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remover := NewMockArticleRemover(ctrl)
	remover.EXPECT().DeleteAll(gomock.Any()).Return(nil)
	cache := NewMockCacheInvalidator(ctrl)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	svc := NewArticleService(NewMockArticleCountReader(ctrl), remover, cache)

	assert.NoError(t, svc.Clear(context.Background()))
}

func TestArticleService_Clear_DeleteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remover := NewMockArticleRemover(ctrl)
	remover.EXPECT().DeleteAll(gomock.Any()).Return(errors.New("truncate failed"))

	svc := NewArticleService(NewMockArticleCountReader(ctrl), remover, nil)

	assert.Error(t, svc.Clear(context.Background()))
}

func TestArticleService_Clear_InvalidateFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remover := NewMockArticleRemover(ctrl)
	remover.EXPECT().DeleteAll(gomock.Any()).Return(nil)
	cache := NewMockCacheInvalidator(ctrl)
	cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

	svc := NewArticleService(NewMockArticleCountReader(ctrl), remover, cache)

	assert.NoError(t, svc.Clear(context.Background()))
}
