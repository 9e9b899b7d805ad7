package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/ecommerce-api/models"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := r.DB.WithContext(ctx).Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) Get(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, notFound(err, "customer", id)
	}
	return &customer, nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(customer).Error
}

// Update overwrites every column of an already resolved customer.
func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(customer).Error
}

// Delete removes the customer together with its orders, their lines and
// its account.
func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			return notFound(err, "customer", id)
		}

		orderIDs := tx.Model(&models.Order{}).Select("id").Where("customer_id = ?", id)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&models.OrderProduct{}).Error; err != nil {
			return fmt.Errorf("delete order lines of customer %d: %w", id, err)
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return fmt.Errorf("delete orders of customer %d: %w", id, err)
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.CustomerAccount{}).Error; err != nil {
			return fmt.Errorf("delete account of customer %d: %w", id, err)
		}
		return tx.Delete(&customer).Error
	})
}
