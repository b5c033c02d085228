package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/commerce-pro/internal/application/dto"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos e imágenes de producto.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto (SKU único, precio > 0, categoría existente).
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		Audit:       entity.NewAudit(time.Now(), userID),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, nil), nil
}

// GetByID obtiene un producto con sus imágenes.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	images, err := uc.repo.ListImages(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, images), nil
}

// Update actualiza un producto. El SKU no cambia después de la creación; los
// cambios de precio no afectan pedidos ya creados (el precio se copia a la línea).
func (uc *ProductUseCase) Update(id, userID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	product.Touch(time.Now(), userID)
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, nil), nil
}

// List lista productos, opcionalmente por categoría.
func (uc *ProductUseCase) List(categoryID string, limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(categoryID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, nil))
	}
	return items, nil
}

// AddImage agrega una imagen a la galería del producto.
func (uc *ProductUseCase) AddImage(productID, userID string, in dto.AddProductImageRequest) (*dto.ProductImageResponse, error) {
	if in.URL == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	image := &entity.ProductImage{
		ID:        uuid.New().String(),
		ProductID: productID,
		URL:       in.URL,
		Position:  in.Position,
		IsPrimary: in.IsPrimary,
		Audit:     entity.NewAudit(time.Now(), userID),
	}
	if err := uc.repo.AddImage(image); err != nil {
		return nil, err
	}
	return &dto.ProductImageResponse{ID: image.ID, URL: image.URL, Position: image.Position, IsPrimary: image.IsPrimary}, nil
}

// Delete hace borrado lógico de un producto.
func (uc *ProductUseCase) Delete(id, userID string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id, userID)
}

func toProductResponse(p *entity.Product, images []*entity.ProductImage) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, img := range images {
		resp.Images = append(resp.Images, dto.ProductImageResponse{
			ID:        img.ID,
			URL:       img.URL,
			Position:  img.Position,
			IsPrimary: img.IsPrimary,
		})
	}
	return resp
}
