package model

// Cart is the active shopping cart of a user. One per user.
type Cart struct {
	ID     int64
	UserID int64
}

// CartLine holds a single (product, quantity) pair within a cart.
// Unique per (cart, product); adds merge into the existing line.
type CartLine struct {
	ID        int64
	CartID    int64
	ProductID int64
	Quantity  int
	Selected  bool
}

// CartEntry joins a cart line with its product for display and pricing.
type CartEntry struct {
	Line    CartLine
	Product Product
}

// LineTotal returns price × quantity for the entry.
func (e CartEntry) LineTotal() float64 {
	return e.Product.Price * float64(e.Line.Quantity)
}

// SelectedSubtotal sums line totals over selected lines only.
func SelectedSubtotal(entries []CartEntry) float64 {
	var sum float64
	for _, e := range entries {
		if e.Line.Selected {
			sum += e.LineTotal()
		}
	}
	return sum
}
