package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/ecommerce-api/events"
	"github.com/yeremiapane/ecommerce-api/models"
	"github.com/yeremiapane/ecommerce-api/repositories"
	"github.com/yeremiapane/ecommerce-api/schemas"
	"github.com/yeremiapane/ecommerce-api/utils"
)

const msgAccountNotFound = "Customer account not found"

type CustomerAccountController struct {
	Accounts *repositories.CustomerAccountRepository
	Hub      *events.Hub
}

func NewCustomerAccountController(db *gorm.DB, hub *events.Hub) *CustomerAccountController {
	return &CustomerAccountController{
		Accounts: repositories.NewCustomerAccountRepository(db),
		Hub:      hub,
	}
}

// GetAllAccounts -> GET /customeraccounts, each with its customer embedded
func (ac *CustomerAccountController) GetAllAccounts(c *gin.Context) {
	accounts, err := ac.Accounts.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, msgAccountNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customer accounts", schemas.DumpCustomerAccounts(accounts))
}

// GetAccountByID -> GET /customeraccounts/:id
func (ac *CustomerAccountController) GetAccountByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	account, err := ac.Accounts.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, msgAccountNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer account detail", schemas.DumpCustomerAccount(*account))
}

// CreateAccount -> POST /customeraccounts
func (ac *CustomerAccountController) CreateAccount(c *gin.Context) {
	rec, ok := loadPayload(c, schemas.CustomerAccountSchema)
	if !ok {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(rec.String("password")), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	account := models.CustomerAccount{
		Username:   rec.String("username"),
		Password:   string(hashed),
		CustomerID: uint(rec.Int("customer_id")),
	}
	if err := ac.Accounts.Create(c.Request.Context(), &account); err != nil {
		respondStoreError(c, err, msgAccountNotFound)
		return
	}

	utils.InfoLogger.Printf("New customer account created: %s (customer=%d)", account.Username, account.CustomerID)
	ac.Hub.Publish(events.EventCustomerAccountCreated, schemas.DumpCustomerAccount(account))
	utils.RespondJSON(c, http.StatusCreated, "New customer account added successfully", gin.H{"id": account.ID})
}

// UpdateAccount -> PUT /customeraccounts/:id, the password is re-hashed
func (ac *CustomerAccountController) UpdateAccount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	account, err := ac.Accounts.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, msgAccountNotFound)
		return
	}

	rec, ok := loadPayload(c, schemas.CustomerAccountSchema)
	if !ok {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(rec.String("password")), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	account.Username = rec.String("username")
	account.Password = string(hashed)
	account.CustomerID = uint(rec.Int("customer_id"))
	account.Customer = nil
	if err := ac.Accounts.Update(c.Request.Context(), account); err != nil {
		respondStoreError(c, err, msgAccountNotFound)
		return
	}

	ac.Hub.Publish(events.EventCustomerAccountUpdated, schemas.DumpCustomerAccount(*account))
	utils.RespondJSON(c, http.StatusOK, "Customer account updated successfully", gin.H{"id": account.ID})
}

// DeleteAccount -> DELETE /customeraccounts/:id, the customer stays
func (ac *CustomerAccountController) DeleteAccount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ac.Accounts.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, msgAccountNotFound)
		return
	}

	ac.Hub.Publish(events.EventCustomerAccountDeleted, gin.H{"id": id})
	utils.RespondJSON(c, http.StatusOK, "Customer account removed successfully", gin.H{"id": id})
}
