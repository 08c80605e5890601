package cleanup

import (
	"context"

	"github.com/atelier/backend/internal/domain/cleanup"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CascadeService coordinates soft delete, restore and purge across the entity
// hierarchy. Every multi-row operation runs inside one database transaction:
// a cascade either lands completely or not at all.
type CascadeService struct {
	store  cleanup.TxStore
	logger *zap.Logger
}

// NewCascadeService creates a new CascadeService
func NewCascadeService(store cleanup.TxStore, logger *zap.Logger) *CascadeService {
	return &CascadeService{store: store, logger: logger}
}

// SoftDelete marks the entity and its live dependents deleted, children
// first. Soft-deleting an already deleted entity is a no-op.
func (s *CascadeService) SoftDelete(ctx context.Context, et cleanup.EntityType, id uuid.UUID) error {
	return s.store.WithinTx(ctx, func(store cleanup.Store) error {
		return s.softDeleteTree(ctx, store, et, id)
	})
}

func (s *CascadeService) softDeleteTree(ctx context.Context, store cleanup.Store, et cleanup.EntityType, id uuid.UUID) error {
	state, err := store.State(ctx, et, id)
	if err != nil {
		return err
	}
	switch state {
	case cleanup.StateSoftDeleted:
		return nil
	case cleanup.StatePurged:
		return shared.ErrNotFound
	}

	children, err := store.Children(ctx, et, id, cleanup.StateLive)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := s.softDeleteTree(ctx, store, child.Type, child.ID); err != nil {
			return err
		}
	}

	s.logger.Info("Soft deleting entity",
		zap.String("entity_type", et.String()),
		zap.String("entity_id", id.String()),
		zap.Int("children", len(children)),
	)
	return store.SoftDelete(ctx, et, id)
}

// Restore brings a soft-deleted entity back to live. It refuses while any
// row the entity references is itself soft-deleted or purged: restoring such
// a row would resurrect a dangling reference. Children stay deleted; they are
// restored individually, each under the same check.
func (s *CascadeService) Restore(ctx context.Context, et cleanup.EntityType, id uuid.UUID) error {
	return s.store.WithinTx(ctx, func(store cleanup.Store) error {
		state, err := store.State(ctx, et, id)
		if err != nil {
			return err
		}
		switch state {
		case cleanup.StateLive:
			return nil
		case cleanup.StatePurged:
			return shared.ErrNotFound
		}

		missing, err := store.MissingLiveReference(ctx, et, id)
		if err != nil {
			return err
		}
		if missing != "" {
			return shared.NewReferentialIntegrityError(
				"Cannot restore " + et.String() + ": referenced " + missing + " is not live")
		}

		s.logger.Info("Restoring entity",
			zap.String("entity_type", et.String()),
			zap.String("entity_id", id.String()),
		)
		return store.Restore(ctx, et, id)
	})
}

// Purge permanently removes a soft-deleted entity and its soft-deleted
// dependents, children before parents. A live child blocks the purge; with
// force set, live children are purged too. Purged rows are gone for good and
// their codes are never reissued.
func (s *CascadeService) Purge(ctx context.Context, et cleanup.EntityType, id uuid.UUID, force bool) error {
	return s.store.WithinTx(ctx, func(store cleanup.Store) error {
		state, err := store.State(ctx, et, id)
		if err != nil {
			return err
		}
		if state == cleanup.StatePurged {
			return nil
		}
		if state == cleanup.StateLive && !force {
			return shared.NewInvalidStateError(
				"Cannot purge " + et.String() + ": entity is live; soft delete it first")
		}
		return s.purgeTree(ctx, store, et, id, force)
	})
}

func (s *CascadeService) purgeTree(ctx context.Context, store cleanup.Store, et cleanup.EntityType, id uuid.UUID, force bool) error {
	liveChildren, err := store.Children(ctx, et, id, cleanup.StateLive)
	if err != nil {
		return err
	}
	if len(liveChildren) > 0 && !force {
		first := liveChildren[0]
		return shared.NewReferentialIntegrityError(
			"Cannot purge " + et.String() + ": live " + first.Type.String() + " rows still depend on it")
	}
	for _, child := range liveChildren {
		if err := s.purgeTree(ctx, store, child.Type, child.ID, force); err != nil {
			return err
		}
	}

	deletedChildren, err := store.Children(ctx, et, id, cleanup.StateSoftDeleted)
	if err != nil {
		return err
	}
	for _, child := range deletedChildren {
		if err := s.purgeTree(ctx, store, child.Type, child.ID, force); err != nil {
			return err
		}
	}

	s.logger.Info("Purging entity",
		zap.String("entity_type", et.String()),
		zap.String("entity_id", id.String()),
		zap.Bool("force", force),
	)
	return store.HardDelete(ctx, et, id)
}

// PurgeSampleData permanently removes every row flagged as sample data and
// reports how many rows were removed. Codes held by purged sample rows are
// retired with them.
func (s *CascadeService) PurgeSampleData(ctx context.Context) (int64, error) {
	var removed int64
	err := s.store.WithinTx(ctx, func(store cleanup.Store) error {
		var err error
		removed, err = store.PurgeSampleRows(ctx)
		return err
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("Purged sample data", zap.Int64("rows_removed", removed))
	return removed, nil
}
