package repository

import (
	"context"
	"errors"

	"github.com/syedahad2205/dajaj-pos/internal/domain/entity"
	domainRepo "github.com/syedahad2205/dajaj-pos/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new counter repository
func NewCounterRepository(db *gorm.DB) domainRepo.CounterRepository {
	return &counterRepository{db: db}
}

// Allocate performs the atomic read-modify-write over the named counter.
// The row is locked with SELECT ... FOR UPDATE for the duration of the
// transaction, so concurrent callers serialize on the row and never see
// the same value. A missing counter row reads as 0 and is created with 1.
func (r *counterRepository) Allocate(ctx context.Context, name string) (int64, error) {
	var next int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter entity.BillCounter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&counter, "name = ?", name).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			next = 1
			return tx.Create(&entity.BillCounter{Name: name, Current: next}).Error
		}
		if err != nil {
			return err
		}

		next = counter.Current + 1
		return tx.Model(&entity.BillCounter{}).
			Where("name = ?", name).
			Update("current", next).Error
	})
	if err != nil {
		return 0, err
	}

	return next, nil
}
