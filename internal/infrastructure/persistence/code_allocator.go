package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/atelier/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// codeAllocateRetries bounds the allocate-insert retry loop. Two concurrent
// writers can compute the same next code; the unique index on the code column
// rejects the loser, who re-reads and retries with a fresh number.
const codeAllocateRetries = 5

// nextCode computes the next document code for a prefix family inside the
// caller's transaction. The scan is unscoped on purpose: soft-deleted rows
// keep their codes reserved, so a restored document never collides. Gaps left
// by purged rows are not backfilled.
func nextCode(tx *gorm.DB, model any, prefix ledger.CodePrefix) (string, error) {
	var maxCode sql.NullString
	err := tx.Unscoped().
		Model(model).
		Select("MAX(code)").
		Where("code LIKE ?", prefix.String()+"%").
		Scan(&maxCode).Error
	if err != nil {
		return "", err
	}

	seq := 0
	if maxCode.Valid {
		if parsed, ok := prefix.ParseSequence(maxCode.String); ok {
			seq = parsed
		}
	}
	if seq >= ledger.MaxCodeSequence {
		return "", shared.ErrCodeExhausted
	}
	return prefix.Format(seq + 1), nil
}

// withCodeRetry runs fn in a database transaction and retries it when the
// insert loses a code race. Each attempt is a fresh transaction, so a failed
// insert never leaks a half-allocated code. Any error other than a duplicate
// key aborts immediately.
func withCodeRetry(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt < codeAllocateRetries; attempt++ {
		err = db.WithContext(ctx).Transaction(fn)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return shared.ErrCodeExhausted
}
