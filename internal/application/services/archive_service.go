package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/KretovDmitry/canang-orders/internal/application/errs"
	"github.com/KretovDmitry/canang-orders/internal/application/interfaces"
	"github.com/KretovDmitry/canang-orders/internal/domain/entities"
	"github.com/KretovDmitry/canang-orders/internal/domain/repositories"
	"github.com/KretovDmitry/canang-orders/internal/metrics"
	"github.com/KretovDmitry/canang-orders/pkg/logger"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
)

type ArchiveService struct {
	orderRepo   repositories.OrderRepository
	archiveRepo repositories.ArchiveRepository
	trm         *manager.Manager
	metrics     *metrics.Metrics
	logger      logger.Logger
}

func NewArchiveService(
	orderRepository repositories.OrderRepository,
	archiveRepository repositories.ArchiveRepository,
	trm *manager.Manager,
	metrics *metrics.Metrics,
	logger logger.Logger,
) (*ArchiveService, error) {
	if orderRepository == nil {
		return nil, errors.New("nil dependency: order repository")
	}
	if archiveRepository == nil {
		return nil, errors.New("nil dependency: archive repository")
	}
	if trm == nil {
		return nil, errors.New("nil dependency: transaction manager")
	}
	if metrics == nil {
		return nil, errors.New("nil dependency: metrics")
	}
	return &ArchiveService{
		orderRepo:   orderRepository,
		archiveRepo: archiveRepository,
		trm:         trm,
		metrics:     metrics,
		logger:      logger,
	}, nil
}

var _ interfaces.ArchiveService = (*ArchiveService)(nil)

// ArchiveAndReset closes the current work period: every done order is
// frozen into a new archive and removed from the active set.
//
// The snapshot is read without a lock. Orders marked done after that
// read belong to the next archive. Inserting the archive and deleting
// the snapshotted orders is a single transaction: on any failure neither
// is visible and the error wraps errs.ErrResetFailed.
func (s *ArchiveService) ArchiveAndReset(ctx context.Context) (*entities.Archive, error) {
	orders, err := s.orderRepo.GetDoneOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("get done orders: %w", err)
	}

	if len(orders) == 0 {
		return nil, errs.ErrNothingToArchive
	}

	archive := entities.NewArchive(orders)
	ids := archive.Orders.OrderIDs()

	err = s.trm.Do(ctx, func(ctx context.Context) error {
		// Serialize concurrent resets of the same orders.
		if err := s.archiveRepo.LockArchiving(ctx); err != nil {
			return fmt.Errorf("lock archiving: %w", err)
		}

		if err := s.archiveRepo.CreateArchive(ctx, archive); err != nil {
			return fmt.Errorf("create archive: %w", err)
		}

		// Delete by identifier, not by status: the snapshot decides.
		deleted, err := s.orderRepo.DeleteOrders(ctx, ids)
		if err != nil {
			return fmt.Errorf("delete archived orders: %w", err)
		}

		// Another reset got some of these orders first.
		if deleted != int64(len(ids)) {
			return fmt.Errorf("%w: %d of %d orders already archived",
				errs.ErrDataConflict, int64(len(ids))-deleted, len(ids))
		}

		return nil
	})
	if err != nil {
		s.metrics.ArchiveFailed()
		return nil, fmt.Errorf("%w: %w", errs.ErrResetFailed, err)
	}

	s.metrics.ArchiveCreated(len(archive.Orders), archive.TotalRevenue)

	s.logger.With(ctx, "archive_id", archive.ID, "orders", len(archive.Orders)).
		Infof("archived revenue %s", archive.TotalRevenue)

	return archive, nil
}

func (s *ArchiveService) GetArchive(ctx context.Context, id int64) (*entities.Archive, error) {
	return s.archiveRepo.GetArchiveByID(ctx, id)
}

// Get archives, newest first.
func (s *ArchiveService) GetArchives(ctx context.Context) ([]*entities.Archive, error) {
	return s.archiveRepo.GetArchives(ctx)
}

func (s *ArchiveService) DeleteArchive(ctx context.Context, id int64) error {
	if err := s.archiveRepo.DeleteArchive(ctx, id); err != nil {
		return err
	}

	s.logger.With(ctx, "archive_id", id).Info("archive deleted")

	return nil
}
