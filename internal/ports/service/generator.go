package service

import (
	"context"
)

// IReadingGenerator интерфейс для генерации текста разбора по готовому промпту
type IReadingGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
