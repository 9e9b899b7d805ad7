package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/ecommerce-api/models"
	"github.com/yeremiapane/ecommerce-api/utils"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// List returns every order with its lines and their products.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	db := r.DB.WithContext(ctx)
	orders := []models.Order{}
	if err := db.Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if err := loadLines(db, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) Get(ctx context.Context, id uint) (*models.Order, error) {
	db := r.DB.WithContext(ctx)
	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		return nil, notFound(err, "order", id)
	}
	orders := []models.Order{order}
	if err := loadLines(db, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// ByCustomer returns the orders placed by one customer, possibly none.
func (r *OrderRepository) ByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	db := r.DB.WithContext(ctx)
	orders := []models.Order{}
	if err := db.Where("customer_id = ?", customerID).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("orders of customer %d: %w", customerID, err)
	}
	if err := loadLines(db, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Create inserts the order and attaches productIDs to it. Ids that do not
// resolve to a product are dropped; a repeated id adds one to the line
// quantity. The customer reference is checked by the store.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order, productIDs []uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}
		lines, err := attachProducts(tx, order.ID, productIDs)
		if err != nil {
			return err
		}
		order.Lines = lines
		return nil
	})
}

// Update overwrites the order columns. When replaceLines is set the
// existing lines are dropped and productIDs attached as in Create.
func (r *OrderRepository) Update(ctx context.Context, order *models.Order, productIDs []uint, replaceLines bool) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(order).Error; err != nil {
			return err
		}
		if !replaceLines {
			return nil
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderProduct{}).Error; err != nil {
			return fmt.Errorf("clear lines of order %d: %w", order.ID, err)
		}
		lines, err := attachProducts(tx, order.ID, productIDs)
		if err != nil {
			return err
		}
		order.Lines = lines
		return nil
	})
}

func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			return notFound(err, "order", id)
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
			return fmt.Errorf("delete lines of order %d: %w", id, err)
		}
		return tx.Delete(&order).Error
	})
}

func attachProducts(tx *gorm.DB, orderID uint, productIDs []uint) ([]models.OrderProduct, error) {
	quantities := make(map[uint]int, len(productIDs))
	var ordered []uint
	for _, id := range productIDs {
		if quantities[id] == 0 {
			ordered = append(ordered, id)
		}
		quantities[id]++
	}

	lines := make([]models.OrderProduct, 0, len(ordered))
	for _, id := range ordered {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.InfoLogger.Warnf("Order %d: product %d does not exist, skipped", orderID, id)
				continue
			}
			return nil, fmt.Errorf("find product %d: %w", id, err)
		}

		line := models.OrderProduct{
			OrderID:       orderID,
			ProductID:     product.ID,
			OrderQuantity: quantities[id],
		}
		if err := tx.Omit(clause.Associations).Create(&line).Error; err != nil {
			return nil, fmt.Errorf("attach product %d to order %d: %w", id, orderID, err)
		}
		line.Product = &product
		lines = append(lines, line)
	}
	return lines, nil
}

func loadLines(db *gorm.DB, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	var lines []models.OrderProduct
	err := db.Preload("Product").
		Where("order_id IN ?", ids).
		Order("order_id").Order("product_id").
		Find(&lines).Error
	if err != nil {
		return fmt.Errorf("load order lines: %w", err)
	}

	byOrder := make(map[uint][]models.OrderProduct, len(orders))
	for _, line := range lines {
		byOrder[line.OrderID] = append(byOrder[line.OrderID], line)
	}
	for i := range orders {
		orders[i].Lines = byOrder[orders[i].ID]
	}
	return nil
}
