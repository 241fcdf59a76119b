package service

import "errors"

// Ошибки уровня загрузки вопросов
var (
	// ErrMalformedProviderResponse означает, что внешний провайдер вернул
	// ответ, который не удалось разобрать, либо элемент без обязательных полей.
	// Запрошенное количество вопросов — величина, влияющая на корректность,
	// поэтому такие элементы не отбрасываются молча, а валят всю загрузку.
	ErrMalformedProviderResponse = errors.New("malformed trivia provider response")

	// ErrSourceExhausted означает, что лимит обращений к провайдеру исчерпан,
	// а нужное количество вопросов так и не набрано.
	ErrSourceExhausted = errors.New("trivia source exhausted fetch attempts")
)
