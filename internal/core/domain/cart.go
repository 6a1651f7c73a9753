package domain

import "math"

const (
	// FlatShippingRate is charged on any non-empty cart.
	FlatShippingRate = 5.99
	// TaxRate is applied to the subtotal.
	TaxRate = 0.07
)

// CartItem is one line of a cart: a product reference, a positive quantity
// and the price snapshotted at add time.
type CartItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Brand       string  `json:"brand"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Quantity    int     `json:"quantity"`
}

// Cart holds the items of one storefront session.
type Cart struct {
	SessionID string     `json:"sessionId"`
	Items     []CartItem `json:"items"`
}

// CartTotals is the order summary derived from a cart.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ItemCount returns the summed quantity across all lines.
func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Find returns a pointer to the line for productID, or nil.
func (c *Cart) Find(productID int64) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Remove deletes the line for productID, reporting whether it existed.
func (c *Cart) Remove(productID int64) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Totals computes the order summary: flat shipping on any non-empty cart and
// a 7% tax on the subtotal. All amounts are rounded to cents.
func (c Cart) Totals() CartTotals {
	var subtotal float64
	for _, it := range c.Items {
		subtotal += it.Price * float64(it.Quantity)
	}
	subtotal = roundCents(subtotal)

	var shipping float64
	if subtotal > 0 {
		shipping = FlatShippingRate
	}
	tax := roundCents(subtotal * TaxRate)

	return CartTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    roundCents(subtotal + shipping + tax),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
