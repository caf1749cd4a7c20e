package mapper

import (
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/users/application/types"
	userdomain "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/validation"
)

// User represents the transport-level user payload.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone int64  `json:"tel"`
}

// ToAddUserCommand checks the raw body and turns it into a typed command.
func ToAddUserCommand(payload validation.Payload) (types.AddUserCommand, error) {
	if err := validation.RequireFields(payload, "name", "tel"); err != nil {
		return types.AddUserCommand{}, err
	}
	phone, err := validation.ParsePhone("tel", payload["tel"])
	if err != nil {
		return types.AddUserCommand{}, err
	}
	name, _ := validation.Stringify(payload["name"])
	return types.AddUserCommand{Name: name, Phone: phone}, nil
}

// FromDomainUser converts a domain user into a transport representation.
func FromDomainUser(user *userdomain.User) User {
	if user == nil {
		return User{}
	}
	return User{ID: user.ID, Name: user.Name, Phone: user.Phone}
}

// FromDomainUsers converts a slice of domain users.
func FromDomainUsers(users []*userdomain.User) []User {
	result := make([]User, 0, len(users))
	for _, user := range users {
		result = append(result, FromDomainUser(user))
	}
	return result
}
