package interfaces

import (
	"context"

	"github.com/KretovDmitry/canang-orders/internal/domain/entities"
)

// ArchiveService closes the books and browses the history.
type ArchiveService interface {
	// Moves every done order into a new archive. Returns
	// errs.ErrNothingToArchive when there are no done orders.
	ArchiveAndReset(context.Context) (*entities.Archive, error)
	GetArchive(context.Context, int64) (*entities.Archive, error)
	GetArchives(context.Context) ([]*entities.Archive, error)
	DeleteArchive(context.Context, int64) error
}
