package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName    = errors.New("dish name is required")
	ErrInvalidPrice = errors.New("dish price must be greater than zero")
)

// Dish is an entry of the restaurant menu.
type Dish struct {
	ID    int64
	Name  string
	Price float64
}

// NewDish builds a dish ensuring the name and price invariants.
func NewDish(id int64, name string, price float64) (*Dish, error) {
	dish := &Dish{ID: id}
	if err := dish.Rename(name); err != nil {
		return nil, err
	}
	if err := dish.UpdatePrice(price); err != nil {
		return nil, err
	}
	return dish, nil
}

// Rename trims and validates the dish name.
func (d *Dish) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	d.Name = name
	return nil
}

// UpdatePrice is the only mutation allowed once a dish exists.
func (d *Dish) UpdatePrice(price float64) error {
	if !(price > 0) {
		return ErrInvalidPrice
	}
	d.Price = price
	return nil
}

// Validate re-applies the invariants before persistence.
func (d *Dish) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if !(d.Price > 0) {
		return ErrInvalidPrice
	}
	return nil
}

// Filter narrows a dish search. Nil criteria are ignored and set criteria compose.
type Filter struct {
	Name  *string
	Price *float64
}

// IsEmpty reports whether no criterion is set.
func (f Filter) IsEmpty() bool {
	return f.Name == nil && f.Price == nil
}

// Matches applies a case-insensitive substring match on the name and an exact match on the price.
func (f Filter) Matches(d Dish) bool {
	if f.Name != nil && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(*f.Name)) {
		return false
	}
	if f.Price != nil && d.Price != *f.Price {
		return false
	}
	return true
}
