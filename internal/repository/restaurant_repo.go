package repository

import (
	"Biteflow/internal/model"
	"context"

	"gorm.io/gorm"
)

// RestaurantRepo 餐厅目录的只读访问，归属权校验与展示字段来源
type RestaurantRepo interface {
	GetRestaurant(ctx context.Context, id uint64) (*model.Restaurant, error)
}

type RestaurantRepoImpl struct {
	db *gorm.DB
}

func NewRestaurantRepo(db *gorm.DB) RestaurantRepo {
	return &RestaurantRepoImpl{db}
}

func (s *RestaurantRepoImpl) GetRestaurant(ctx context.Context, id uint64) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	err := s.db.WithContext(ctx).First(&restaurant, id).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}
