package route

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Template возвращает шаблон маршрута mux (например /orders/{id}), иначе путь запроса.
// Шаблон держит кардинальность меток метрик ограниченной.
func Template(r *http.Request) string {
	if current := mux.CurrentRoute(r); current != nil {
		if template, err := current.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}
