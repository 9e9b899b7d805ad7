package schemas

import (
	"github.com/yeremiapane/ecommerce-api/models"
)

type CustomerView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ProductView struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
}

// OrderProductView is a product as seen from an order, with the line quantity.
type OrderProductView struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type OrderView struct {
	ID               uint               `json:"id"`
	Date             string             `json:"date"`
	ExpectedDelivery string             `json:"expected_delivery"`
	CustomerID       uint               `json:"customer_id"`
	Products         []OrderProductView `json:"products"`
}

type CustomerAccountView struct {
	ID         uint          `json:"id"`
	Username   string        `json:"username"`
	CustomerID uint          `json:"customer_id"`
	Customer   *CustomerView `json:"customer,omitempty"`
}

type StockView struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type TrackingView struct {
	Date             string `json:"date"`
	ExpectedDelivery string `json:"expected_delivery"`
}

func DumpCustomer(c models.Customer) CustomerView {
	return CustomerView{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}
}

func DumpCustomers(customers []models.Customer) []CustomerView {
	out := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		out = append(out, DumpCustomer(c))
	}
	return out
}

func DumpProduct(p models.Product) ProductView {
	return ProductView{ID: p.ID, Name: p.Name, Price: p.Price, StockQuantity: p.StockQuantity}
}

func DumpProducts(products []models.Product) []ProductView {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, DumpProduct(p))
	}
	return out
}

// DumpOrder embeds the products of every loaded line. Lines whose product
// was not loaded are skipped.
func DumpOrder(o models.Order) OrderView {
	view := OrderView{
		ID:               o.ID,
		Date:             o.Date.Format(DateLayout),
		ExpectedDelivery: o.ExpectedDelivery.Format(DateLayout),
		CustomerID:       o.CustomerID,
		Products:         make([]OrderProductView, 0, len(o.Lines)),
	}
	for _, line := range o.Lines {
		if line.Product == nil {
			continue
		}
		view.Products = append(view.Products, OrderProductView{
			ID:       line.Product.ID,
			Name:     line.Product.Name,
			Price:    line.Product.Price,
			Quantity: line.OrderQuantity,
		})
	}
	return view
}

func DumpOrders(orders []models.Order) []OrderView {
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, DumpOrder(o))
	}
	return out
}

func DumpCustomerAccount(a models.CustomerAccount) CustomerAccountView {
	view := CustomerAccountView{ID: a.ID, Username: a.Username, CustomerID: a.CustomerID}
	if a.Customer != nil {
		customer := DumpCustomer(*a.Customer)
		view.Customer = &customer
	}
	return view
}

func DumpCustomerAccounts(accounts []models.CustomerAccount) []CustomerAccountView {
	out := make([]CustomerAccountView, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, DumpCustomerAccount(a))
	}
	return out
}

func DumpStockLevels(levels []models.StockLevel) []StockView {
	out := make([]StockView, 0, len(levels))
	for _, l := range levels {
		out = append(out, StockView{ID: l.ID, Name: l.Name, Quantity: l.StockQuantity})
	}
	return out
}

func DumpTracking(o models.Order) TrackingView {
	return TrackingView{
		Date:             o.Date.Format(DateLayout),
		ExpectedDelivery: o.ExpectedDelivery.Format(DateLayout),
	}
}
