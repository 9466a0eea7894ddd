package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Migrate aplica los scripts de schema/ en orden. Son idempotentes (IF NOT EXISTS).
func Migrate(ctx context.Context, q Querier) error {
	files, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return fmt.Errorf("listar schema: %w", err)
	}
	sort.Strings(files)
	for _, name := range files {
		sql, err := schemaFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("leer %s: %w", name, err)
		}
		if _, err := q.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("aplicar %s: %w", name, err)
		}
	}
	return nil
}

// SchemaSQL devuelve los scripts concatenados, para volcarlos en un seed SQL.
func SchemaSQL() (string, error) {
	files, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return "", err
	}
	sort.Strings(files)
	var out []byte
	for _, name := range files {
		b, err := schemaFS.ReadFile(name)
		if err != nil {
			return "", err
		}
		out = append(out, b...)
		out = append(out, '\n')
	}
	return string(out), nil
}
