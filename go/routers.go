package restaurantserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handlers of every resource.
type ApiHandleFunctions struct {
	DishAPI   DishAPI
	UserAPI   UserAPI
	OrderAPI  OrderAPI
	HealthAPI HealthAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the API routes to an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		router.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	return router
}

// DefaultHandleFunc answers routes whose handler is not wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{"ListDishes", http.MethodGet, "/dishes", handleFunctions.DishAPI.ListDishes},
		{"GetDish", http.MethodGet, "/dishes/:id", handleFunctions.DishAPI.GetDish},
		{"AddDish", http.MethodPost, "/dishes", handleFunctions.DishAPI.AddDish},
		{"UpdateDishPrice", http.MethodPut, "/dishes/:id", handleFunctions.DishAPI.UpdateDishPrice},
		{"DeleteDish", http.MethodDelete, "/dishes/:id", handleFunctions.DishAPI.DeleteDish},
		{"DeleteAllDishes", http.MethodDelete, "/dishes", handleFunctions.DishAPI.DeleteAllDishes},

		{"ListUsers", http.MethodGet, "/users", handleFunctions.UserAPI.ListUsers},
		{"FindUserByPhone", http.MethodGet, "/users/search", handleFunctions.UserAPI.FindUserByPhone},
		{"GetUser", http.MethodGet, "/users/:id", handleFunctions.UserAPI.GetUser},
		{"AddUser", http.MethodPost, "/users", handleFunctions.UserAPI.AddUser},
		{"DeleteUserByName", http.MethodDelete, "/users/:name", handleFunctions.UserAPI.DeleteUserByName},

		{"ListOrders", http.MethodGet, "/orders", handleFunctions.OrderAPI.ListOrders},
		{"GetDishTotal", http.MethodGet, "/orders/total/:dishId", handleFunctions.OrderAPI.GetDishTotal},
		{"GetOrder", http.MethodGet, "/orders/:id", handleFunctions.OrderAPI.GetOrder},
		{"AddOrder", http.MethodPost, "/orders", handleFunctions.OrderAPI.AddOrder},
		{"DeleteOrder", http.MethodDelete, "/orders/:id", handleFunctions.OrderAPI.DeleteOrder},

		{"Healthz", http.MethodGet, "/healthz", handleFunctions.HealthAPI.Healthz},
	}
}
