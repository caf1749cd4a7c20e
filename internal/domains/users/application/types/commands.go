package types

// AddUserCommand registers a customer; the directory assigns the id.
type AddUserCommand struct {
	Name  string `json:"name" validate:"notblank"`
	Phone int64  `json:"tel" validate:"phone"`
}
