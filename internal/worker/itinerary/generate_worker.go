package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rural-itinerary/internal/domain"
	"github.com/rural-itinerary/internal/domain/repository"
	"github.com/rural-itinerary/internal/usecase/dto"
	"github.com/rural-itinerary/internal/worker"
	"go.uber.org/zap"
)

const (
	defaultBatchSize = 10
	emptyQueuePause  = 100 * time.Millisecond
	errorPause       = time.Second
)

// Generator - то, что умеет строить маршрут (usecase.ItineraryUseCase)
type Generator interface {
	Generate(ctx context.Context, req dto.ItineraryRequest) (*domain.Itinerary, error)
}

// GenerateWorker читает stream:itinerary:generate и публикует результат в stream:itinerary:done
type GenerateWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	generator    Generator
	consumerName string
	batchSize    int
}

// NewGenerateWorker - batchSize <= 0 заменяется значением по умолчанию
func NewGenerateWorker(
	streamRepo repository.StreamRepository,
	generator Generator,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *GenerateWorker {
	hostname, _ := os.Hostname()
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &GenerateWorker{
		BaseWorker:   worker.NewBaseWorker("itinerary-generate", consumerGroup, logger),
		streamRepo:   streamRepo,
		generator:    generator,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		batchSize:    batchSize,
	}
}

// Start - цикл чтения пачек до Stop или отмены ctx
func (w *GenerateWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting itinerary worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamItineraryGenerate, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.processBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.Pause(ctx, errorPause)
			continue
		}

		if processed == 0 {
			w.Pause(ctx, emptyQueuePause)
		}
	}
}

// processBatch обрабатывает до batchSize сообщений и подтверждает все прочитанные
func (w *GenerateWorker) processBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamItineraryGenerate,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	logger := w.Logger()
	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	ids := make([]string, 0, len(messages))
	failed := 0
	for _, msg := range messages {
		ids = append(ids, msg.ID)
		if !w.handle(ctx, msg) {
			failed++
		}
	}

	// битые сообщения тоже подтверждаются, иначе они останутся в pending
	if err := w.streamRepo.AckMessages(ctx, domain.StreamItineraryGenerate, w.ConsumerGroup(), ids); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("failed", failed))

	return len(messages), nil
}

// handle - false, если сообщение не разобрано или маршрут не построен
func (w *GenerateWorker) handle(ctx context.Context, msg domain.StreamMessage) bool {
	logger := w.Logger()

	event, err := parseMessage(msg)
	if err != nil {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return false
	}

	logger.Debug("Generating itinerary",
		zap.String("request_id", event.RequestID.String()),
		zap.Int("days", event.Days),
		zap.Strings("categories", event.Categories),
		zap.Bool("budget", event.HasBudget()))

	done := &domain.ItineraryDoneEvent{RequestID: event.RequestID}

	it, err := w.generator.Generate(ctx, dto.ItineraryRequestFromEvent(event))
	if err != nil {
		logger.Warn("Itinerary generation failed",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		done.Error = err.Error()
	} else {
		done.Itinerary = it
	}

	if err := w.streamRepo.PublishToStream(ctx, domain.StreamItineraryDone, done); err != nil {
		logger.Error("Failed to publish done event",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		return false
	}

	return done.Error == ""
}

func parseMessage(msg domain.StreamMessage) (*domain.ItineraryRequestEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.ItineraryRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}
