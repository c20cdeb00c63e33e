package domain

import "errors"

// Ошибки пайплайна обработки запроса.
// UseCase логирует детали сам и возвращает наверх только сентинел,
// контроллер маппит его в HTTP-статус и фиксированное сообщение.
var (
	// ErrMalformedBody тело запроса объявлено как JSON, но не парсится
	ErrMalformedBody = errors.New("malformed request body")

	// ErrMissingFields отсутствует хотя бы одно обязательное поле
	ErrMissingFields = errors.New("missing required fields")

	// ErrMissingCaptcha нет captcha-токена (отдельно от остальных полей)
	ErrMissingCaptcha = errors.New("missing captcha token")

	// ErrCaptchaRejected провайдер captcha вернул success=false
	ErrCaptchaRejected = errors.New("captcha rejected")

	// ErrCaptchaUnreachable провайдер captcha недоступен
	ErrCaptchaUnreachable = errors.New("captcha service unreachable")

	// ErrGenerationFailed генерация текста разбора не удалась
	ErrGenerationFailed = errors.New("reading generation failed")

	// ErrRenderFailed не удалось собрать PDF-документ
	ErrRenderFailed = errors.New("document rendering failed")

	// ErrDeliveryFailed почтовый провайдер не принял письмо
	ErrDeliveryFailed = errors.New("email delivery failed")

	// ErrProxySignature HMAC-подпись app proxy не сошлась
	ErrProxySignature = errors.New("invalid proxy signature")
)
