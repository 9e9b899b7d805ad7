package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/ecommerce-api/models"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.DB.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Get(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, notFound(err, "product", id)
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

// Delete removes the product and every order line that references it.
func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			return notFound(err, "product", id)
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
			return fmt.Errorf("delete order lines of product %d: %w", id, err)
		}
		return tx.Delete(&product).Error
	})
}

// StockLevels returns id, name and stock quantity of every product.
func (r *ProductRepository) StockLevels(ctx context.Context) ([]models.StockLevel, error) {
	levels := []models.StockLevel{}
	err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Select("id", "name", "stock_quantity").
		Order("id").
		Scan(&levels).Error
	if err != nil {
		return nil, fmt.Errorf("stock levels: %w", err)
	}
	return levels, nil
}
