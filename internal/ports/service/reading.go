package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/hazcam-nano/astra-intake-api/internal/domain"
)

// IReadingService интерфейс бизнес-логики обработки запроса на разбор
type IReadingService interface {
	Process(ctx context.Context, requestID uuid.UUID, req domain.ReadingRequest) error
}
