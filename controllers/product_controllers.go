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

const msgProductNotFound = "Product not found"

type ProductController struct {
	Products *repositories.ProductRepository
	Hub      *events.Hub
}

func NewProductController(db *gorm.DB, hub *events.Hub) *ProductController {
	return &ProductController{
		Products: repositories.NewProductRepository(db),
		Hub:      hub,
	}
}

// GetAllProducts -> GET /products
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	products, err := pc.Products.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, msgProductNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", schemas.DumpProducts(products))
}

// GetProductByID -> GET /products/:id
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := pc.Products.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, msgProductNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product detail", schemas.DumpProduct(*product))
}

// CreateProduct -> POST /products
func (pc *ProductController) CreateProduct(c *gin.Context) {
	rec, ok := loadPayload(c, schemas.ProductSchema)
	if !ok {
		return
	}

	product := models.Product{
		Name:          rec.String("name"),
		Price:         rec.Float("price"),
		StockQuantity: int(rec.Int("stock_quantity")),
	}
	if err := pc.Products.Create(c.Request.Context(), &product); err != nil {
		respondStoreError(c, err, msgProductNotFound)
		return
	}

	utils.InfoLogger.Printf("New product created: %s (ID=%d)", product.Name, product.ID)
	pc.Hub.Publish(events.EventProductCreated, schemas.DumpProduct(product))
	utils.RespondJSON(c, http.StatusCreated, "New product added successfully", gin.H{"id": product.ID})
}

// UpdateProduct -> PUT /products/:id
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := pc.Products.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, msgProductNotFound)
		return
	}

	rec, ok := loadPayload(c, schemas.ProductSchema)
	if !ok {
		return
	}

	product.Name = rec.String("name")
	product.Price = rec.Float("price")
	product.StockQuantity = int(rec.Int("stock_quantity"))
	if err := pc.Products.Update(c.Request.Context(), product); err != nil {
		respondStoreError(c, err, msgProductNotFound)
		return
	}

	pc.Hub.Publish(events.EventProductUpdated, schemas.DumpProduct(*product))
	utils.RespondJSON(c, http.StatusOK, "Product updated successfully", gin.H{"id": product.ID})
}

// DeleteProduct -> DELETE /products/:id, order lines naming it go too
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := pc.Products.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, msgProductNotFound)
		return
	}

	pc.Hub.Publish(events.EventProductDeleted, gin.H{"id": id})
	utils.RespondJSON(c, http.StatusOK, "Product removed successfully", gin.H{"id": id})
}

// CheckStock -> GET /products/checkstock
func (pc *ProductController) CheckStock(c *gin.Context) {
	levels, err := pc.Products.StockLevels(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, msgProductNotFound)
		return
	}
	if len(levels) == 0 {
		utils.RespondError(c, http.StatusBadRequest, &CustomError{"No products found"})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Stock levels", schemas.DumpStockLevels(levels))
}
