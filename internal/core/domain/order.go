package domain

// OrderItem is one line of a customer order as submitted to the backend.
type OrderItem struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a customer order owned by the remote backend. The gateway submits
// and reads orders but never stores them.
type Order struct {
	ID         int64       `json:"id,omitempty"`
	Items      []OrderItem `json:"items"`
	Subtotal   float64     `json:"subtotal"`
	Shipping   float64     `json:"shipping"`
	Tax        float64     `json:"tax"`
	Total      float64     `json:"total"`
	Status     string      `json:"status,omitempty"`
	PlacedAt   string      `json:"placedAt,omitempty"`
	CustomerID int64       `json:"customerId,omitempty"`
}

// Profile is the customer profile held by the backend.
type Profile struct {
	ID        int64  `json:"id,omitempty"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Address is a delivery address registered with the backend.
type Address struct {
	ID      int64  `json:"id,omitempty"`
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}
