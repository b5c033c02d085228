package repository

import "github.com/tu-usuario/commerce-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List filtra por categoría; cadena vacía = todas.
	List(categoryID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string, deletedBy string) error

	AddImage(image *entity.ProductImage) error
	ListImages(productID string) ([]*entity.ProductImage, error)
}
