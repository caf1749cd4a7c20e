package mapper

import (
	"strings"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/application/types"
	dishdomain "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/validation"
)

// Dish is the transport-level dish payload.
type Dish struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ToAddDishCommand checks the raw body and turns it into a typed command.
func ToAddDishCommand(payload validation.Payload) (types.AddDishCommand, error) {
	if err := validation.RequireFields(payload, "name", "price"); err != nil {
		return types.AddDishCommand{}, err
	}
	price, err := validation.ParsePositiveNumber("price", payload["price"])
	if err != nil {
		return types.AddDishCommand{}, err
	}
	name, _ := validation.Stringify(payload["name"])
	return types.AddDishCommand{Name: name, Price: price}, nil
}

// ToUpdatePriceCommand checks the raw body of a price update.
func ToUpdatePriceCommand(id int64, payload validation.Payload) (types.UpdateDishPriceCommand, error) {
	if err := validation.RequireFields(payload, "price"); err != nil {
		return types.UpdateDishPriceCommand{}, err
	}
	price, err := validation.ParsePositiveNumber("price", payload["price"])
	if err != nil {
		return types.UpdateDishPriceCommand{}, err
	}
	return types.UpdateDishPriceCommand{ID: id, Price: price}, nil
}

// ToSearchQuery builds a search from the optional name and price query values. Blank values are ignored.
func ToSearchQuery(name, price string) (types.SearchDishesQuery, error) {
	var query types.SearchDishesQuery
	if name = strings.TrimSpace(name); name != "" {
		query.Name = &name
	}
	if strings.TrimSpace(price) != "" {
		parsed, err := validation.ParsePositiveNumber("price", price)
		if err != nil {
			return types.SearchDishesQuery{}, err
		}
		query.Price = &parsed
	}
	return query, nil
}

// FromDomainDish converts a domain dish into its transport representation.
func FromDomainDish(dish *dishdomain.Dish) Dish {
	if dish == nil {
		return Dish{}
	}
	return Dish{ID: dish.ID, Name: dish.Name, Price: dish.Price}
}

// FromDomainDishes converts a slice of domain dishes.
func FromDomainDishes(dishes []*dishdomain.Dish) []Dish {
	result := make([]Dish, 0, len(dishes))
	for _, dish := range dishes {
		result = append(result, FromDomainDish(dish))
	}
	return result
}
