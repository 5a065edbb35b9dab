package repository

import (
	"context"
	"errors"

	"github.com/syedahad2205/dajaj-pos/internal/domain/entity"
	domainRepo "github.com/syedahad2205/dajaj-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new operator repository
func NewOperatorRepository(db *gorm.DB) domainRepo.OperatorRepository {
	return &operatorRepository{db: db}
}

func (r *operatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	return r.db.WithContext(ctx).Create(operator).Error
}

func (r *operatorRepository) GetByEmail(ctx context.Context, email string) (*entity.Operator, error) {
	var operator entity.Operator
	err := r.db.WithContext(ctx).First(&operator, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &operator, err
}
