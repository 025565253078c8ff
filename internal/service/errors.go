// Package service содержит ошибки, общие для сервисов, работающих через Order API.
package service

import "errors"

var (
	// ErrAuth - нет действующей сессии или Order API ответил 401/403.
	ErrAuth = errors.New("not authenticated")
	// ErrFetch - сетевой сбой, неуспешный статус или некорректный ответ Order API.
	ErrFetch = errors.New("fetch failed")
)
