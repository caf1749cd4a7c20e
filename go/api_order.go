package restaurantserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/adapters/http/mapper"
	orderports "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/ports"
)

// OrderAPI serves the order ledger.
type OrderAPI struct {
	service orderports.Service
}

func NewOrderAPI(service orderports.Service) OrderAPI {
	return OrderAPI{service: service}
}

// Get /orders
// Lists orders with their user and dish
func (api *OrderAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromEnrichedOrders(orders))
}

// Get /orders/:id
func (api *OrderAPI) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromEnrichedOrder(order))
}

// Post /orders
func (api *OrderAPI) AddOrder(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	cmd, err := ordermapper.ToAddOrderCommand(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	order, err := api.service.Add(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ordermapper.FromDomainOrder(order))
}

// Delete /orders/:id
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "order deleted")
}

// Get /orders/total/:dishId
// Totals the revenue of a dish at its current price
func (api *OrderAPI) GetDishTotal(c *gin.Context) {
	dishID, ok := parseIDParam(c, "dishId")
	if !ok {
		return
	}
	total, err := api.service.TotalForDish(c.Request.Context(), dishID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainTotal(total))
}
