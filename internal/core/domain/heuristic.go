package domain

import "strings"

// MatchesSampleCategory reports whether a product belongs to the named
// category under the sample-dataset keyword heuristic. The embedded samples
// carry no real category associations, so membership is approximated from
// the product name and brand:
//
//	women:       name contains Dress, Gown or Leggings, or brand Elle
//	men:         everything the women rule does not claim
//	accessories: name contains Wallet, Belt, Scarf, Cap or Sunglasses
//
// Unknown category names exclude nothing. This is explicitly approximate and
// applies only on the fallback path, never to live backend data.
func MatchesSampleCategory(p Product, categoryName string) bool {
	switch strings.ToLower(categoryName) {
	case "men":
		return !sampleWomen(p)
	case "women":
		return sampleWomen(p)
	case "accessories":
		return sampleNameContains(p, "Wallet", "Belt", "Scarf", "Cap", "Sunglasses")
	default:
		return true
	}
}

func sampleWomen(p Product) bool {
	return sampleNameContains(p, "Dress", "Gown", "Leggings") || p.Brand == "Elle"
}

func sampleNameContains(p Product, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(p.ProductName, kw) {
			return true
		}
	}
	return false
}
