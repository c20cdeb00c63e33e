package service

import (
	"context"
)

// ICaptchaVerifier интерфейс для серверной проверки captcha-токена.
// ok=false означает, что провайдер отклонил токен; err — транспортную ошибку.
type ICaptchaVerifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}
