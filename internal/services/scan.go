package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/models"
)

var (
	// ErrArticleNotFound is returned when a scanned EAN is absent from the master.
	ErrArticleNotFound = errors.New("codigo no encontrado en el maestro")
)

// AnonymousUser is recorded when a scan arrives without a session username.
const AnonymousUser = "anonimo"

// ArticleReader looks up master articles by barcode.
type ArticleReader interface {
	GetByEAN(ctx context.Context, ean string) (*models.Article, error)
}

// ArticleCache caches positive barcode lookups.
type ArticleCache interface {
	GetByEAN(ctx context.Context, ean string) (*models.Article, error)
	SetByEAN(ctx context.Context, article *models.Article) error
}

// ReadingWriter appends scan audit records.
type ReadingWriter interface {
	Save(ctx context.Context, usuario, ean, codigoArticulo, descripcion string) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ScanService records barcode scans against the article master.
type ScanService struct {
	articles    ArticleReader
	cache       ArticleCache
	readings    ReadingWriter
	kafkaWriter KafkaWriter
}

// NewScanService creates a new ScanService. cache and kafkaWriter are
// optional; pass nil to disable them.
func NewScanService(articles ArticleReader, cache ArticleCache, readings ReadingWriter, kafkaWriter KafkaWriter) *ScanService {
	return &ScanService{
		articles:    articles,
		cache:       cache,
		readings:    readings,
		kafkaWriter: kafkaWriter,
	}
}

// Scan looks up the EAN in the master and, when found, appends a reading
// carrying a snapshot of the article's code and description. The snapshot
// keeps historical readings stable across master re-imports.
func (s *ScanService) Scan(ctx context.Context, ean, usuario string) (*models.Reading, error) {
	if usuario == "" {
		usuario = AnonymousUser
	}

	article, err := s.lookup(ctx, ean)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	id, err := s.readings.Save(ctx, usuario, ean, article.CodigoArticulo, article.Descripcion)
	if err != nil {
		logger.Log.Errorw("failed to save reading", "ean", ean, "usuario", usuario, "error", err)
		return nil, err
	}

	reading := &models.Reading{
		ID:             id,
		Usuario:        usuario,
		EAN:            ean,
		CodigoArticulo: article.CodigoArticulo,
		Descripcion:    article.Descripcion,
		FechaLectura:   time.Now(),
	}

	s.publishScan(ctx, models.ScanEvent{
		LecturaID: id,
		Usuario:   usuario,
		EAN:       ean,
		Timestamp: reading.FechaLectura.Unix(),
	})

	return reading, nil
}

// lookup resolves an EAN through the cache when one is wired, falling back to
// the master table. Only positive results are cached.
func (s *ScanService) lookup(ctx context.Context, ean string) (*models.Article, error) {
	if s.cache != nil {
		cached, err := s.cache.GetByEAN(ctx, ean)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil {
			logger.Log.Warnw("article cache lookup failed, falling back to database", "ean", ean, "error", err)
		}
	}

	article, err := s.articles.GetByEAN(ctx, ean)
	if err != nil {
		logger.Log.Errorw("failed to look up article", "ean", ean, "error", err)
		return nil, err
	}
	if article != nil && s.cache != nil {
		if err := s.cache.SetByEAN(ctx, article); err != nil {
			logger.Log.Warnw("failed to cache article", "ean", ean, "error", err)
		}
	}

	return article, nil
}

// publishScan publishes a scan event to Kafka. Publish failures are logged
// and never fail the scan itself.
func (s *ScanService) publishScan(ctx context.Context, event models.ScanEvent) {
	if s.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal scan event", "lectura_id", event.LecturaID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.LecturaID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish scan event", "lectura_id", event.LecturaID, "error", err)
	} else {
		logger.Log.Infow("scan event published", "lectura_id", event.LecturaID, "ean", event.EAN)
	}
}
