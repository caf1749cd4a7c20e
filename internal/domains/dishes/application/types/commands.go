package types

// AddDishCommand creates a dish; the catalog assigns the id.
type AddDishCommand struct {
	Name  string  `json:"name" validate:"notblank"`
	Price float64 `json:"price" validate:"gt=0"`
}

// UpdateDishPriceCommand changes the price of an existing dish.
type UpdateDishPriceCommand struct {
	ID    int64   `json:"id" validate:"gt=0"`
	Price float64 `json:"price" validate:"gt=0"`
}

// SearchDishesQuery filters dishes by name substring and/or exact price.
type SearchDishesQuery struct {
	Name  *string
	Price *float64
}
