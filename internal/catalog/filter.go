// Package catalog derives the filtered, sorted product list shown on the
// storefront. The result is a fresh slice recomputed from scratch on every
// call, never maintained incrementally.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"supergo/internal/model"
)

// SortOrder selects the ordering of the filtered product list.
type SortOrder string

const (
	SortNameAsc        SortOrder = "name-asc"
	SortNameDesc       SortOrder = "name-desc"
	SortPriceAsc       SortOrder = "price-asc"
	SortPriceDesc      SortOrder = "price-desc"
	SortRatingDesc     SortOrder = "rating-desc"
	SortPopularityDesc SortOrder = "popularity-desc"
)

// Availability filter tokens.
const (
	AvailabilityAll        = "all"
	AvailabilityInStock    = "in-stock"
	AvailabilityOutOfStock = "out-of-stock"
)

// CategoryAll matches every product.
const CategoryAll = "all"

// Query holds every input that shapes the product listing. All predicates
// are ANDed.
type Query struct {
	Search string
	// Category is "all", a top-level category id (matched against
	// mainCategory), or a subcategory id (matched against category). The id
	// is resolved against the category tree to pick the right field.
	Category string
	Filters  model.Filters
	Sort     SortOrder
}

// Apply filters and sorts the product list. Ties keep the original relative
// order (stable sort).
func Apply(products []model.Product, categories []model.Category, q Query) []model.Product {
	// The storefront is Spanish-facing; name ordering uses Spanish collation
	// like the original locale-aware compare. A Collator is not safe for
	// concurrent use, so each call gets its own.
	collator := collate.New(language.Spanish)

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matches(p, categories, q) {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch q.Sort {
		case SortPriceAsc:
			return a.Price < b.Price
		case SortPriceDesc:
			return a.Price > b.Price
		case SortNameDesc:
			return collator.CompareString(b.Name, a.Name) < 0
		case SortRatingDesc:
			return a.Rating > b.Rating
		case SortPopularityDesc:
			return a.ReviewCount > b.ReviewCount
		default:
			return collator.CompareString(a.Name, b.Name) < 0
		}
	})
	return out
}

func matches(p model.Product, categories []model.Category, q Query) bool {
	return matchesSearch(p, q.Search) &&
		matchesCategory(p, categories, q.Category) &&
		matchesPriceRange(p, q.Filters.PriceRange) &&
		p.Rating >= q.Filters.MinRating &&
		matchesAvailability(p, q.Filters.Availability)
}

func matchesSearch(p model.Product, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// matchesCategory resolves the selector against the category tree: a
// top-level id filters on mainCategory, a subcategory id filters on
// category, and an id that is neither matches nothing. A subcategory id is
// scoped under exactly one parent, so the two fields are never both checked.
func matchesCategory(p model.Product, categories []model.Category, selector string) bool {
	if selector == CategoryAll || selector == "" {
		return true
	}
	for _, c := range categories {
		if c.ID == selector {
			return p.MainCategory == selector
		}
	}
	for _, c := range categories {
		for _, sc := range c.Subcategories {
			if sc.ID == selector {
				return p.Category == selector
			}
		}
	}
	return false
}

// matchesPriceRange parses a "min-max" token. An unparsable max means an
// unbounded upper end; an unparsable min matches nothing, mirroring the
// original NaN comparison semantics.
func matchesPriceRange(p model.Product, priceRange string) bool {
	if priceRange == "" || priceRange == "all" {
		return true
	}
	minPart, maxPart, _ := strings.Cut(priceRange, "-")
	minPrice, err := strconv.ParseFloat(minPart, 64)
	if err != nil {
		return false
	}
	if p.Price < minPrice {
		return false
	}
	maxPrice, err := strconv.ParseFloat(maxPart, 64)
	if err != nil {
		return true
	}
	return p.Price <= maxPrice
}

func matchesAvailability(p model.Product, availability string) bool {
	switch availability {
	case AvailabilityInStock:
		return p.Stock > 0
	case AvailabilityOutOfStock:
		return p.Stock == 0
	default:
		return true
	}
}
