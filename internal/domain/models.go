package domain

// Location is a product's position on the store map. X and Y are normalized
// to [0,1]; Zone mirrors the label of a Place but is not enforced.
type Location struct {
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	Zone string  `json:"zone" yaml:"zone"`
}

type InventoryItem struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Price    float64  `json:"price" yaml:"price"`
	Stock    int      `json:"stock" yaml:"stock"`
	Sold     int      `json:"sold" yaml:"sold"`
	Image    string   `json:"image,omitempty" yaml:"image,omitempty"`
	Location Location `json:"location" yaml:"location"`
}

type CartLocation struct {
	Zone string `json:"zone"`
}

// CartItem is a copy of a product taken when it was added to the cart.
// It does not follow later inventory changes.
type CartItem struct {
	ProductID string       `json:"productId"`
	Name      string       `json:"name"`
	Price     float64      `json:"price"`
	Image     string       `json:"image,omitempty"`
	Quantity  int          `json:"quantity"`
	Location  CartLocation `json:"location"`
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Order is immutable once created. Total is frozen at creation time.
type Order struct {
	ID           string       `json:"id"`
	Items        []CartItem   `json:"items"`
	Total        float64      `json:"total"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Status       OrderStatus  `json:"status"`
	CreatedAt    string       `json:"createdAt"`
	UpdatedAt    string       `json:"updatedAt"`
}

// Place is a named rectangle on the store map in normalized coordinates.
type Place struct {
	ID     string  `json:"id" yaml:"id"`
	Label  string  `json:"label" yaml:"label"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Totals are the admin dashboard aggregates over the inventory.
type Totals struct {
	TotalProducts     int     `json:"totalProducts"`
	TotalUnitsInStock int     `json:"totalUnitsInStock"`
	TotalUnitsSold    int     `json:"totalUnitsSold"`
	Revenue           float64 `json:"revenue"`
}
