package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/ecommerce-api/events"
	"github.com/yeremiapane/ecommerce-api/models"
	"github.com/yeremiapane/ecommerce-api/repositories"
	"github.com/yeremiapane/ecommerce-api/schemas"
	"github.com/yeremiapane/ecommerce-api/utils"
)

const msgCustomerNotFound = "Customer not found"

type CustomerController struct {
	Customers *repositories.CustomerRepository
	Hub       *events.Hub
}

func NewCustomerController(db *gorm.DB, hub *events.Hub) *CustomerController {
	return &CustomerController{
		Customers: repositories.NewCustomerRepository(db),
		Hub:       hub,
	}
}

// GetAllCustomers -> GET /customers
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Customers.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, msgCustomerNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", schemas.DumpCustomers(customers))
}

// GetCustomerByID -> GET /customers/:id
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	customer, err := cc.Customers.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, msgCustomerNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer detail", schemas.DumpCustomer(*customer))
}

// CreateCustomer -> POST /customers
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	rec, ok := loadPayload(c, schemas.CustomerSchema)
	if !ok {
		return
	}

	customer := models.Customer{
		Name:  rec.String("name"),
		Email: rec.String("email"),
		Phone: rec.String("phone"),
	}
	if err := cc.Customers.Create(c.Request.Context(), &customer); err != nil {
		respondStoreError(c, err, msgCustomerNotFound)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%d)", customer.ID)
	cc.Hub.Publish(events.EventCustomerCreated, schemas.DumpCustomer(customer))
	utils.RespondJSON(c, http.StatusCreated, "New customer added successfully", gin.H{"id": customer.ID})
}

// UpdateCustomer -> PUT /customers/:id, every field is replaced
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	customer, err := cc.Customers.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, msgCustomerNotFound)
		return
	}

	rec, ok := loadPayload(c, schemas.CustomerSchema)
	if !ok {
		return
	}

	customer.Name = rec.String("name")
	customer.Email = rec.String("email")
	customer.Phone = rec.String("phone")
	if err := cc.Customers.Update(c.Request.Context(), customer); err != nil {
		respondStoreError(c, err, msgCustomerNotFound)
		return
	}

	cc.Hub.Publish(events.EventCustomerUpdated, schemas.DumpCustomer(*customer))
	utils.RespondJSON(c, http.StatusOK, "Customer details updated successfully", gin.H{"id": customer.ID})
}

// DeleteCustomer -> DELETE /customers/:id, also removes the customer's
// orders and account
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := cc.Customers.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, msgCustomerNotFound)
		return
	}

	utils.InfoLogger.Printf("Customer removed (ID=%d)", id)
	cc.Hub.Publish(events.EventCustomerDeleted, gin.H{"id": id})
	utils.RespondJSON(c, http.StatusOK, "Customer removed successfully", gin.H{"id": id})
}
