package port

import (
	"context"

	"stoik.com/emailregistry/internal/core/domain"
)

type EmailsStorage interface {
	StoreBatch(ctx context.Context, batch []domain.EmailRecord) ([]domain.EmailRecord, error)
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.EmailRecord, error)
	GetEmailsByIDs(ctx context.Context, ids []int64) ([]domain.EmailRecord, error)
}
