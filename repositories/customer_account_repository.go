package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/ecommerce-api/models"
)

type CustomerAccountRepository struct {
	DB *gorm.DB
}

func NewCustomerAccountRepository(db *gorm.DB) *CustomerAccountRepository {
	return &CustomerAccountRepository{DB: db}
}

// List returns every account with its customer loaded.
func (r *CustomerAccountRepository) List(ctx context.Context) ([]models.CustomerAccount, error) {
	accounts := []models.CustomerAccount{}
	if err := r.DB.WithContext(ctx).Preload("Customer").Order("id").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("list customer accounts: %w", err)
	}
	return accounts, nil
}

func (r *CustomerAccountRepository) Get(ctx context.Context, id uint) (*models.CustomerAccount, error) {
	var account models.CustomerAccount
	if err := r.DB.WithContext(ctx).Preload("Customer").First(&account, id).Error; err != nil {
		return nil, notFound(err, "customer account", id)
	}
	return &account, nil
}

func (r *CustomerAccountRepository) Create(ctx context.Context, account *models.CustomerAccount) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(account).Error
}

// Update writes the account columns only; a preloaded Customer is not
// saved back and does not override CustomerID.
func (r *CustomerAccountRepository) Update(ctx context.Context, account *models.CustomerAccount) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(account).Error
}

func (r *CustomerAccountRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.CustomerAccount
		if err := tx.First(&account, id).Error; err != nil {
			return notFound(err, "customer account", id)
		}
		return tx.Delete(&account).Error
	})
}
