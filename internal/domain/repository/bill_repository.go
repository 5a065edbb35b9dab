package repository

import (
	"context"
	"time"

	"github.com/syedahad2205/dajaj-pos/internal/domain/entity"
)

// BillRepository persists finalized bills. Bills are append-only: there is
// no update or delete.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByBillNo(ctx context.Context, billNo string) (*entity.Bill, error)
	ExistsByToken(ctx context.Context, token string) (bool, error)
	ListByDateRange(ctx context.Context, from, to time.Time, page, perPage int) ([]entity.Bill, int64, error)
}

// CounterRepository allocates sequential bill numbers. Allocate performs an
// atomic read-modify-write over the named counter: a missing counter reads
// as 0, and two concurrent callers never receive the same value.
type CounterRepository interface {
	Allocate(ctx context.Context, name string) (int64, error)
}

// OperatorRepository manages operator accounts.
type OperatorRepository interface {
	Create(ctx context.Context, operator *entity.Operator) error
	GetByEmail(ctx context.Context, email string) (*entity.Operator, error)
}
