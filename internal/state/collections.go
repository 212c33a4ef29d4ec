package state

import (
	"strings"

	"supergo/internal/model"
)

// Helpers below rebuild only the slice they change and leave the input
// untouched, so unchanged branches stay shared between state versions.

func findProduct(products []model.Product, id int) *model.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

func findCoupon(coupons []model.Coupon, code string) *model.Coupon {
	for i := range coupons {
		if coupons[i].Matches(code) {
			return &coupons[i]
		}
	}
	return nil
}

func removeCartLine(cart []model.CartItem, productID int) []model.CartItem {
	out := make([]model.CartItem, 0, len(cart))
	for _, line := range cart {
		if line.ProductID != productID {
			out = append(out, line)
		}
	}
	if len(out) == len(cart) {
		return cart
	}
	return out
}

func flipMembership(ids []int, id int) []int {
	for i, existing := range ids {
		if existing == id {
			out := make([]int, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			return append(out, ids[i+1:]...)
		}
	}
	return append(ids[:len(ids):len(ids)], id)
}

func replaceProduct(products []model.Product, p model.Product) []model.Product {
	for i := range products {
		if products[i].ID == p.ID {
			out := append([]model.Product(nil), products...)
			out[i] = p
			return out
		}
	}
	return products
}

func deleteProduct(products []model.Product, id int) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	if len(out) == len(products) {
		return products
	}
	return out
}

func replaceUser(users []model.User, u model.User) []model.User {
	for i := range users {
		if users[i].ID == u.ID {
			out := append([]model.User(nil), users...)
			out[i] = u
			return out
		}
	}
	return users
}

func deleteUser(users []model.User, id string) []model.User {
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	if len(out) == len(users) {
		return users
	}
	return out
}

func replaceStore(stores []model.Store, st model.Store) []model.Store {
	for i := range stores {
		if stores[i].ID == st.ID {
			out := append([]model.Store(nil), stores...)
			out[i] = st
			return out
		}
	}
	return stores
}

func deleteStore(stores []model.Store, id string) []model.Store {
	out := make([]model.Store, 0, len(stores))
	for _, st := range stores {
		if st.ID != id {
			out = append(out, st)
		}
	}
	if len(out) == len(stores) {
		return stores
	}
	return out
}

func replaceCoupon(coupons []model.Coupon, c model.Coupon) []model.Coupon {
	for i := range coupons {
		if strings.EqualFold(coupons[i].Code, c.Code) {
			out := append([]model.Coupon(nil), coupons...)
			out[i] = c
			return out
		}
	}
	return coupons
}

func deleteCoupon(coupons []model.Coupon, code string) []model.Coupon {
	out := make([]model.Coupon, 0, len(coupons))
	for _, c := range coupons {
		if !c.Matches(code) {
			out = append(out, c)
		}
	}
	if len(out) == len(coupons) {
		return coupons
	}
	return out
}

func deleteCategory(categories []model.Category, id string) []model.Category {
	out := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if c.ID != id {
			out = append(out, c)
		}
	}
	if len(out) == len(categories) {
		return categories
	}
	return out
}

func addSubcategory(categories []model.Category, categoryID string, sub model.Subcategory) []model.Category {
	for i := range categories {
		if categories[i].ID != categoryID {
			continue
		}
		out := append([]model.Category(nil), categories...)
		c := out[i]
		c.Subcategories = append(c.Subcategories[:len(c.Subcategories):len(c.Subcategories)], sub)
		out[i] = c
		return out
	}
	return categories
}

func deleteSubcategory(categories []model.Category, categoryID, subcategoryID string) []model.Category {
	for i := range categories {
		if categories[i].ID != categoryID {
			continue
		}
		subs := make([]model.Subcategory, 0, len(categories[i].Subcategories))
		for _, sc := range categories[i].Subcategories {
			if sc.ID != subcategoryID {
				subs = append(subs, sc)
			}
		}
		if len(subs) == len(categories[i].Subcategories) {
			return categories
		}
		out := append([]model.Category(nil), categories...)
		c := out[i]
		c.Subcategories = subs
		out[i] = c
		return out
	}
	return categories
}
