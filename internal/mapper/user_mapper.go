package mapper

import (
	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Phone:        u.Phone,
		Name:         u.Name,
		Email:        u.Email,
		Aadhaar:      u.Aadhaar,
		Pincode:      u.Pincode,
		District:     u.District,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		LastLogin:    u.LastLogin,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		Phone:        u.Phone,
		Name:         u.Name,
		Email:        u.Email,
		Aadhaar:      u.Aadhaar,
		Pincode:      u.Pincode,
		District:     u.District,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		LastLogin:    u.LastLogin,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) ToModels(users []*entity.User) []*model.User {
	models := make([]*model.User, len(users))
	for i, u := range users {
		models[i] = m.ToModel(u)
	}
	return models
}
