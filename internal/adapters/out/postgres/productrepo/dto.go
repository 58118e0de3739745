// Package productrepo persists the catalog.
package productrepo

import (
	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO is the database row for one catalog entry.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Description   string
	Size          string
	Price         int
	DiscountPrice int
	IsAvailable   bool `gorm:"index"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID().Bytes(),
		Name:          p.Name(),
		Description:   p.Description(),
		Size:          p.Size(),
		Price:         p.Price(),
		DiscountPrice: p.DiscountPrice(),
		IsAvailable:   p.IsAvailable(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, dto.Name, dto.Description, dto.Size,
		dto.Price, dto.DiscountPrice, dto.IsAvailable,
	)
}
