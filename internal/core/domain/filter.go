package domain

// SortOption enumerates the supported catalog orderings.
type SortOption string

const (
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	// SortLatest orders by descending id. The catalog has no creation
	// timestamp, so the id doubles as a recency surrogate.
	SortLatest SortOption = "latest"
)

// FilterState is the set of user-selected narrowing criteria. Every field is
// independently optional: the zero value of a field imposes no constraint.
type FilterState struct {
	CategoryID int64
	// CategoryName is the display name of the selected category when the
	// caller knows it. It drives the keyword heuristic for products without
	// real category associations.
	CategoryName string
	Brand        string
	Color        string
	Size         string
	MinPrice     *float64
	MaxPrice     *float64
	Sort         SortOption
}
