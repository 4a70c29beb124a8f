package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"campaign-editor/internal/core/port"
)

// validKey reports whether id can address a row. Primary keys are UUIDs, so
// anything else can never match and is not sent to the database.
func validKey(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrNotFound
	}
	return err
}

func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
