package catalog

// LengthOption is one selectable length/price point for a style.
type LengthOption struct {
	Name  string `json:"name,omitempty"`
	Price string `json:"price,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Item is one bookable style with its pricing options.
type Item struct {
	Name          string         `json:"name"`
	Price         string         `json:"price"`
	Description   string         `json:"description"`
	Notes         string         `json:"notes,omitempty"`
	Image         string         `json:"image,omitempty"`
	Images        []string       `json:"images,omitempty"`
	Link          string         `json:"link,omitempty"`
	HairTextures  []string       `json:"hairTextures,omitempty"`
	LengthOptions []LengthOption `json:"lengthOptions,omitempty"`
}

// Subcategory groups related styles under a category.
type Subcategory struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Summary string `json:"summary,omitempty"`
	Items   []Item `json:"items"`
}

// Category is a top-level service grouping. It carries either items directly
// or subcategories, never both.
type Category struct {
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Summary       string        `json:"summary,omitempty"`
	Items         []Item        `json:"items,omitempty"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}
