package models

// MenuItem is a catalog item as served by /api/items. Prices are integer
// cents. The catalog is owned by the backend; the bot never mutates these
// structs in place.
type MenuItem struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       int64            `json:"price"`
	Ingredients []ItemIngredient `json:"ingredients,omitempty"`
}

// ItemIngredient is one ingredient requirement of a menu item.
type ItemIngredient struct {
	Ingredient Ingredient `json:"ingredient"`
	Quantity   int        `json:"quantity"`
	Unit       string     `json:"unit,omitempty"`
}

// Ingredient is a named stock entry. Quantity is the on-hand amount when
// the struct comes from /api/inventory.
type Ingredient struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Inventory is the /api/inventory payload.
type Inventory struct {
	ID          int64        `json:"id,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
}
