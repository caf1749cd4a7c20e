package mapper

import (
	dishmapper "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/adapters/http/mapper"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/application/types"
	orderdomain "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/domain"
	usermapper "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/adapters/http/mapper"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/validation"
)

// Order is the transport-level order payload.
type Order struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
	DishID int64 `json:"dishId"`
}

// EnrichedOrder embeds the referenced user and dish; either is null once removed.
type EnrichedOrder struct {
	Order
	User *usermapper.User `json:"user"`
	Dish *dishmapper.Dish `json:"dish"`
}

// DishTotal is the transport-level revenue of a dish.
type DishTotal struct {
	DishID int64   `json:"dishId"`
	Total  float64 `json:"total"`
}

func ToAddOrderCommand(payload validation.Payload) (types.AddOrderCommand, error) {
	if err := validation.RequireFields(payload, "userId", "dishId"); err != nil {
		return types.AddOrderCommand{}, err
	}
	userID, err := validation.ParseID("userId", payload["userId"])
	if err != nil {
		return types.AddOrderCommand{}, err
	}
	dishID, err := validation.ParseID("dishId", payload["dishId"])
	if err != nil {
		return types.AddOrderCommand{}, err
	}
	return types.AddOrderCommand{UserID: userID, DishID: dishID}, nil
}

func FromDomainOrder(order *orderdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{ID: order.ID, UserID: order.UserID, DishID: order.DishID}
}

func FromEnrichedOrder(order *orderdomain.EnrichedOrder) EnrichedOrder {
	if order == nil {
		return EnrichedOrder{}
	}
	out := EnrichedOrder{Order: FromDomainOrder(&order.Order)}
	if order.User != nil {
		user := usermapper.FromDomainUser(order.User)
		out.User = &user
	}
	if order.Dish != nil {
		dish := dishmapper.FromDomainDish(order.Dish)
		out.Dish = &dish
	}
	return out
}

func FromEnrichedOrders(orders []*orderdomain.EnrichedOrder) []EnrichedOrder {
	result := make([]EnrichedOrder, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromEnrichedOrder(order))
	}
	return result
}

func FromDomainTotal(total *orderdomain.DishTotal) DishTotal {
	if total == nil {
		return DishTotal{}
	}
	return DishTotal{DishID: total.DishID, Total: total.Total}
}
