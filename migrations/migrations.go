// Package migrations 는 goose SQL 마이그레이션 파일을 바이너리에 포함한다.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
