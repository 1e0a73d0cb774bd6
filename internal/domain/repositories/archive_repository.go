package repositories

import (
	"context"

	"github.com/KretovDmitry/canang-orders/internal/domain/entities"
)

type ArchiveRepository interface {
	// Blocks until no other archive is being committed. Must be called
	// inside a transaction, the lock is released with it.
	LockArchiving(context.Context) error
	CreateArchive(context.Context, *entities.Archive) error
	GetArchiveByID(context.Context, int64) (*entities.Archive, error)
	GetArchives(context.Context) ([]*entities.Archive, error)
	DeleteArchive(context.Context, int64) error
}
