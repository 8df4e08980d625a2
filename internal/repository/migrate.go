// Package repository holds the database schema shared by the repositories.
package repository

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
)

//go:embed schema.sql
var schemaSQL string

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db *dbpg.DB) error {
	if _, err := db.Master.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return nil
}
