// Package migrations хранит схему журнала уведомлений в формате goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
