// Package apperr содержит сигнальные ошибки, по которым слой HTTP
// выбирает код ответа.
package apperr

import "errors"

var (
	// ErrNotFound — запрошенная сущность отсутствует (или принадлежит не вызывающему:
	// владение намеренно не отличается от отсутствия, чтобы не раскрывать существование).
	ErrNotFound = errors.New("not found")

	// ErrConflict — нарушение уникальности (VIN, телефон, повторный отзыв).
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials — неверная пара логин/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — refresh токен не прошел проверку подписи/срока
	// или уже был обменян (ротация одноразовая).
	ErrInvalidToken = errors.New("invalid or expired token")
)
