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

type ChatTurnRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatTurnRepository(db *gorm.DB) contract.ChatTurnRepository {
	return &ChatTurnRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatTurnRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatTurnRepositoryImpl) Create(ctx context.Context, turn *entity.ChatTurn) error {
	modelTurn := r.mapper.ToModel(turn)
	if err := r.db.WithContext(ctx).Create(modelTurn).Error; err != nil {
		return err
	}
	*turn = *r.mapper.ToEntity(modelTurn)
	return nil
}

func (r *ChatTurnRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatTurn, error) {
	var modelTurns []*model.ChatTurn
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelTurns).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelTurns), nil
}

func (r *ChatTurnRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatTurn{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
