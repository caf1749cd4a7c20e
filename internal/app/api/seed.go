package api

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	dishtypes "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/application/types"
	dishports "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/ports"
	ordertypes "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/application/types"
	orderports "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/ports"
	usertypes "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/application/types"
	userports "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/ports"
)

//go:embed seed.yaml
var defaultSeed []byte

// SeedData is the fixture loaded at startup. Orders reference the ids the
// dishes and users receive, which follow their position in the file.
type SeedData struct {
	Dishes []struct {
		Name  string  `yaml:"name"`
		Price float64 `yaml:"price"`
	} `yaml:"dishes"`
	Users []struct {
		Name  string `yaml:"name"`
		Phone int64  `yaml:"tel"`
	} `yaml:"users"`
	Orders []struct {
		UserID int64 `yaml:"userId"`
		DishID int64 `yaml:"dishId"`
	} `yaml:"orders"`
}

// LoadSeed reads the fixture at path, or the embedded restaurant fixture when path is empty.
func LoadSeed(path string) (SeedData, error) {
	raw := defaultSeed
	if path != "" {
		var err error
		if raw, err = os.ReadFile(path); err != nil {
			return SeedData{}, fmt.Errorf("read seed file: %w", err)
		}
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return SeedData{}, fmt.Errorf("parse seed data: %w", err)
	}
	return data, nil
}

// ApplySeed inserts the fixture through the services so every invariant is enforced.
func ApplySeed(ctx context.Context, data SeedData, dishes dishports.Service, users userports.Service, orders orderports.Service) error {
	for _, d := range data.Dishes {
		if _, err := dishes.Add(ctx, dishtypes.AddDishCommand{Name: d.Name, Price: d.Price}); err != nil {
			return fmt.Errorf("seed dish %q: %w", d.Name, err)
		}
	}
	for _, u := range data.Users {
		if _, err := users.Add(ctx, usertypes.AddUserCommand{Name: u.Name, Phone: u.Phone}); err != nil {
			return fmt.Errorf("seed user %q: %w", u.Name, err)
		}
	}
	for i, o := range data.Orders {
		if _, err := orders.Add(ctx, ordertypes.AddOrderCommand{UserID: o.UserID, DishID: o.DishID}); err != nil {
			return fmt.Errorf("seed order #%d: %w", i+1, err)
		}
	}
	return nil
}
