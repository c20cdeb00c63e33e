package service

import (
	"context"

	"github.com/hazcam-nano/astra-intake-api/internal/domain"
)

// IDocumentRenderer интерфейс для сборки PDF-документа с текстом разбора
type IDocumentRenderer interface {
	Render(ctx context.Context, req domain.ReadingRequest, readingText string) ([]byte, error)
}
