package restaurantserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dishmapper "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/adapters/http/mapper"
	dishports "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/ports"
)

// DishAPI serves the dish catalog.
type DishAPI struct {
	service dishports.Service
}

func NewDishAPI(service dishports.Service) DishAPI {
	return DishAPI{service: service}
}

// Get /dishes
// Lists the catalog, or searches it when name or price is given
func (api *DishAPI) ListDishes(c *gin.Context) {
	name, hasName := queryValue(c, "name")
	price, hasPrice := queryValue(c, "price")
	if (hasName && name != "") || (hasPrice && price != "") {
		api.searchDishes(c, name, price)
		return
	}
	dishes, err := api.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishmapper.FromDomainDishes(dishes))
}

func (api *DishAPI) searchDishes(c *gin.Context, name, price string) {
	query, err := dishmapper.ToSearchQuery(name, price)
	if err != nil {
		respondError(c, err)
		return
	}
	dishes, err := api.service.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishmapper.FromDomainDishes(dishes))
}

// Get /dishes/:id
func (api *DishAPI) GetDish(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	dish, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishmapper.FromDomainDish(dish))
}

// Post /dishes
func (api *DishAPI) AddDish(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	cmd, err := dishmapper.ToAddDishCommand(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	dish, err := api.service.Add(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dishmapper.FromDomainDish(dish))
}

// Put /dishes/:id
// Updates the price of a dish
func (api *DishAPI) UpdateDishPrice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	// A missing dish answers 404 whatever the body holds.
	if _, err := api.service.Get(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	cmd, err := dishmapper.ToUpdatePriceCommand(id, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	dish, err := api.service.UpdatePrice(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishmapper.FromDomainDish(dish))
}

// Delete /dishes/:id
func (api *DishAPI) DeleteDish(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "dish deleted")
}

// Delete /dishes
// Empties the catalog
func (api *DishAPI) DeleteAllDishes(c *gin.Context) {
	removed, err := api.service.RemoveAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all dishes deleted", "removed": removed})
}
