package model

// Category groups drinks on the home screen. Categories are seeded at
// startup and immutable afterwards.
type Category struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// Drink is a catalog entry. Prices are whole tokens; there are no
// fractional amounts anywhere in the shop.
type Drink struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	CategoryID  uint64 `json:"category_id"`
	ImageURL    string `json:"image_url"`
	IsPopular   bool   `json:"is_popular"`
}

// Topping is an optional add-on priced per unit of the drink it is
// attached to.
type Topping struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}
