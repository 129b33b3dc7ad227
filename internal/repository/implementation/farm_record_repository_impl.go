package implementation

import (
	"context"

	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/mapper"
	"krishi-sakhi-be/internal/model"
	"krishi-sakhi-be/internal/repository/contract"
	"krishi-sakhi-be/internal/repository/specification"

	"gorm.io/gorm"
)

type FarmRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FarmMapper
}

func NewFarmRecordRepository(db *gorm.DB) contract.FarmRecordRepository {
	return &FarmRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewFarmMapper(),
	}
}

func (r *FarmRecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FarmRecordRepositoryImpl) Create(ctx context.Context, record *entity.FarmRecord) error {
	modelRecord := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(modelRecord).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(modelRecord)
	return nil
}

func (r *FarmRecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FarmRecord, error) {
	var modelRecords []*model.FarmRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelRecords).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelRecords), nil
}

func (r *FarmRecordRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.FarmRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
