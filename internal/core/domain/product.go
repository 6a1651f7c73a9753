package domain

// ProductImage is a single image reference attached to a product.
type ProductImage struct {
	ImageURL  string `json:"imageUrl"`
	IsPrimary bool   `json:"isPrimary"`
}

// Product models a catalog item as the remote backend serves it. The gateway
// only ever holds transient copies; products are created and edited through
// the backend's admin operations.
type Product struct {
	ID          int64          `json:"id"`
	ProductName string         `json:"productName"`
	Brand       string         `json:"brand"`
	Price       float64        `json:"price"`
	Color       string         `json:"color"`
	Size        string         `json:"size"`
	Description string         `json:"description"`
	IsActive    bool           `json:"isActive"`
	Images      []ProductImage `json:"images,omitempty"`
	Categories  []Category     `json:"categories,omitempty"`
}

// InCategory reports whether the product carries an association to the given
// category id.
func (p Product) InCategory(categoryID int64) bool {
	for _, c := range p.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

// PrimaryImageURL returns the URL of the primary image, or the first image
// when none is marked primary, or "" for an image-less product.
func (p Product) PrimaryImageURL() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.ImageURL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].ImageURL
	}
	return ""
}

// Category is static reference data per session.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// CatalogQuery narrows a catalog load. Precedence: Search > CategoryID >
// CategoryName > unfiltered.
type CatalogQuery struct {
	Search       string
	CategoryID   int64
	CategoryName string
}

// IsZero reports whether the query imposes no narrowing at all.
func (q CatalogQuery) IsZero() bool {
	return q.Search == "" && q.CategoryID == 0 && q.CategoryName == ""
}

// Catalog is the combined product and category data a storefront page renders.
// Fallback reports whether the product collection came from the embedded
// sample dataset rather than the live backend.
type Catalog struct {
	Products   []Product
	Categories []Category
	Query      CatalogQuery
	Fallback   bool
}
