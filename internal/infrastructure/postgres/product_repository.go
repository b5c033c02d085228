package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. SKU duplicado -> domain.ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, description, price, category_id, ` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	args := append([]any{
		product.ID, product.SKU, product.Name, product.Description, product.Price, product.CategoryID,
	}, auditValues(&product.Audit)...)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (excluye borrados).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, sku, name, description, price, category_id, ` + auditColumns + `
		FROM products WHERE id = $1 AND is_deleted = FALSE`
	return r.getOne(query, id)
}

// GetBySKU obtiene un producto por SKU (excluye borrados).
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `
		SELECT id, sku, name, description, price, category_id, ` + auditColumns + `
		FROM products WHERE sku = $1 AND is_deleted = FALSE`
	return r.getOne(query, sku)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	dest := append([]any{&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.CategoryID}, auditDest(&p.Audit)...)
	err := r.q.QueryRow(context.Background(), query, arg).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente (el SKU no cambia).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, category_id = $5,
			updated_at = $6, updated_by = $7
		WHERE id = $1 AND is_deleted = FALSE`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.CategoryID,
		product.UpdatedAt, product.UpdatedByID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos, opcionalmente por categoría, con paginación.
func (r *ProductRepo) List(categoryID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, sku, name, description, price, category_id, ` + auditColumns + `
		FROM products WHERE is_deleted = FALSE`
	args := []any{}
	pos := 1
	if categoryID != "" {
		query += fmt.Sprintf(" AND category_id = $%d", pos)
		args = append(args, categoryID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		dest := append([]any{&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.CategoryID}, auditDest(&p.Audit)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete hace borrado lógico de un producto.
func (r *ProductRepo) Delete(id string, deletedBy string) error {
	query := `
		UPDATE products SET is_deleted = TRUE, deleted_at = now(), deleted_by = $2,
			updated_at = now(), updated_by = $2
		WHERE id = $1 AND is_deleted = FALSE`
	if _, err := r.q.Exec(context.Background(), query, id, deletedBy); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// AddImage agrega una imagen a la galería del producto.
func (r *ProductRepo) AddImage(image *entity.ProductImage) error {
	query := `
		INSERT INTO product_images (id, product_id, url, position, is_primary, ` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	args := append([]any{image.ID, image.ProductID, image.URL, image.Position, image.IsPrimary},
		auditValues(&image.Audit)...)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		return fmt.Errorf("insert product image: %w", err)
	}
	return nil
}

// ListImages lista las imágenes de un producto ordenadas por posición.
func (r *ProductRepo) ListImages(productID string) ([]*entity.ProductImage, error) {
	query := `
		SELECT id, product_id, url, position, is_primary, ` + auditColumns + `
		FROM product_images WHERE product_id = $1 AND is_deleted = FALSE ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductImage
	for rows.Next() {
		var img entity.ProductImage
		dest := append([]any{&img.ID, &img.ProductID, &img.URL, &img.Position, &img.IsPrimary}, auditDest(&img.Audit)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		list = append(list, &img)
	}
	return list, rows.Err()
}
