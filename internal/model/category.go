package model

// Subcategory is a second-level catalogue grouping. Its id is unique within
// the owning category.
type Subcategory struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// Category is a top-level catalogue grouping owning an ordered list of
// subcategories. Deleting a category deletes its subcategories with it.
type Category struct {
	ID            string        `json:"id" validate:"required"`
	Name          string        `json:"name" validate:"required"`
	Icon          string        `json:"icon,omitempty"`
	Color         string        `json:"color,omitempty"`
	Subcategories []Subcategory `json:"subcategories"`
}
