package service

import (
	"context"

	"github.com/hazcam-nano/astra-intake-api/internal/domain"
)

// IMailSender интерфейс для отправки транзакционного письма.
// Успех означает только приём письма провайдером, не фактическую доставку.
type IMailSender interface {
	Send(ctx context.Context, mail domain.OutboundEmail) error
}
