package restaurantserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usermapper "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/adapters/http/mapper"
	userports "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/ports"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/apperr"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/validation"
)

// UserAPI serves the user directory.
type UserAPI struct {
	service userports.Service
}

func NewUserAPI(service userports.Service) UserAPI {
	return UserAPI{service: service}
}

// Get /users
func (api *UserAPI) ListUsers(c *gin.Context) {
	users, err := api.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainUsers(users))
}

// Get /users/search?tel=
// Finds a user by phone number
func (api *UserAPI) FindUserByPhone(c *gin.Context) {
	raw, _ := queryValue(c, "tel")
	if raw == "" {
		respondError(c, apperr.Validation("tel", "is required"))
		return
	}
	phone, err := validation.ParsePhone("tel", raw)
	if err != nil {
		respondError(c, err)
		return
	}
	user, err := api.service.FindByPhone(c.Request.Context(), phone)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainUser(user))
}

// Get /users/:id
func (api *UserAPI) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainUser(user))
}

// Post /users
func (api *UserAPI) AddUser(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	cmd, err := usermapper.ToAddUserCommand(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	user, err := api.service.Add(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usermapper.FromDomainUser(user))
}

// Delete /users/:name
// Removes the first user with the given name
func (api *UserAPI) DeleteUserByName(c *gin.Context) {
	if err := api.service.RemoveByName(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "user deleted")
}
