// Package catalogrepo reads restaurants and their products. The catalog is maintained
// outside this service; the repository never writes it.
package catalogrepo

import (
	"foodorders/internal/core/domain/model/catalog"
	"foodorders/internal/core/domain/model/kernel"
)

// RestaurantDTO represents the database structure of a restaurant.
type RestaurantDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// ProductDTO represents the database structure of a menu item.
type ProductDTO struct {
	ID           int64  `gorm:"primaryKey"`
	RestaurantID int64  `gorm:"not null;index"`
	Name         string `gorm:"type:varchar(255);not null"`
	Available    bool   `gorm:"not null;default:true"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return catalog.NewRestaurant(id, dto.Name)
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.NewID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	return catalog.NewProduct(id, restaurantID, dto.Name, dto.Available)
}
