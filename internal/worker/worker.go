package worker

import (
	"context"
)

// Worker - фоновый обработчик, управляемый WorkerManager
type Worker interface {
	// Start блокируется до остановки или отмены ctx
	Start(ctx context.Context) error

	// Stop сигнализирует о завершении; повторный вызов безопасен
	Stop() error

	Name() string
}
