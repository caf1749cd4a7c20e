package types

// AddOrderCommand places an order for an existing user and dish.
type AddOrderCommand struct {
	UserID int64 `json:"userId" validate:"gt=0"`
	DishID int64 `json:"dishId" validate:"gt=0"`
}
