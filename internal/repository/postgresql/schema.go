package postgresql

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// ApplySchema creates the employees, leave_balances and leaves tables when
// they do not exist yet. Every statement is idempotent.
func ApplySchema(ctx context.Context, db *database.DB) error {
	files, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return fmt.Errorf("list schema files: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := schemaFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read schema %s: %w", file, err)
		}
		// Simple protocol so the file can hold several statements.
		if _, err := db.Exec(ctx, string(content), pgx.QueryExecModeSimpleProtocol); err != nil {
			return fmt.Errorf("apply schema %s: %w", file, err)
		}
	}
	return nil
}
