package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Sentinel errors returned by repositories. Services and handlers match
// on these with errors.Is instead of parsing messages.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// translateDuplicate maps a store-level uniqueness violation onto
// ErrDuplicate, naming the colliding column when it can be recognised in
// the constraint name or error text. Matching is best-effort: Postgres
// reports the constraint name ("duplicate key value violates unique
// constraint \"idx_users_email\""), SQLite reports table.column ("UNIQUE
// constraint failed: users.email"). Errors that are not uniqueness
// violations pass through unchanged.
func translateDuplicate(err error, columns ...string) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if !errors.Is(err, gorm.ErrDuplicatedKey) &&
		!strings.Contains(msg, "duplicate key") &&
		!strings.Contains(msg, "unique constraint") {
		return err
	}
	for _, col := range columns {
		if strings.Contains(msg, col) {
			return fmt.Errorf("%s already registered: %w", col, ErrDuplicate)
		}
	}
	return fmt.Errorf("unique constraint violated: %w", ErrDuplicate)
}
