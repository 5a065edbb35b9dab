package repository

import (
	"context"
	"errors"
	"time"

	"github.com/syedahad2205/dajaj-pos/internal/domain/entity"
	domainRepo "github.com/syedahad2205/dajaj-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

// Create persists a bill with its item snapshot in one transaction, so a
// partially written bill is never discoverable by bill number.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) GetByBillNo(ctx context.Context, billNo string) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_items.position ASC")
		}).
		Preload("Items.Addons").
		First(&bill, "bill_no = ?", billNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) ExistsByToken(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("public_token = ?", token).
		Count(&count).Error
	return count > 0, err
}

func (r *billRepository) ListByDateRange(ctx context.Context, from, to time.Time, page, perPage int) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("created_at >= ? AND created_at <= ?", from, to)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset((page - 1) * perPage).Limit(perPage).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_items.position ASC")
		}).
		Preload("Items.Addons").
		Order("created_at DESC").
		Find(&bills).Error

	return bills, total, err
}
