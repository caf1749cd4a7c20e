package domain

import (
	"errors"

	dishdomain "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/domain"
	userdomain "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/domain"
)

var (
	ErrInvalidUser = errors.New("order user id must be positive")
	ErrInvalidDish = errors.New("order dish id must be positive")
)

// Order links a user to the dish they ordered.
type Order struct {
	ID     int64
	UserID int64
	DishID int64
}

func NewOrder(id, userID, dishID int64) (*Order, error) {
	o := &Order{ID: id, UserID: userID, DishID: dishID}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) Validate() error {
	if o.UserID <= 0 {
		return ErrInvalidUser
	}
	if o.DishID <= 0 {
		return ErrInvalidDish
	}
	return nil
}

// EnrichedOrder carries an order with the user and dish it references.
// User or Dish is nil when the referenced entity has since been removed.
type EnrichedOrder struct {
	Order
	User *userdomain.User
	Dish *dishdomain.Dish
}

// DishTotal is the revenue a dish produced across all orders at its current price.
type DishTotal struct {
	DishID int64
	Total  float64
}

// TotalFor multiplies the number of orders by the current price. A missing dish totals zero.
func TotalFor(dish *dishdomain.Dish, orders int) DishTotal {
	if dish == nil {
		return DishTotal{}
	}
	return DishTotal{DishID: dish.ID, Total: float64(orders) * dish.Price}
}
