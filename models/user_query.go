package models

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

var ErrInvalidUsername = errors.New("missing or invalid user parameter")

// Older GitHub accounts may end in a hyphen or contain "--", so only the
// leading character is constrained beyond the login alphabet.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*$`)

type UserQuery struct {
	User string `json:"user" query:"user"`
}

func NewUserQuery(user string) UserQuery {
	return UserQuery{User: strings.TrimSpace(user)}
}

func (q UserQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.User,
			validation.Required,
			validation.Length(1, 39),
			validation.Match(usernamePattern),
		),
	)
}

// Username returns the validated login or ErrInvalidUsername.
func (q UserQuery) Username() (string, error) {
	if err := q.Validate(); err != nil {
		return "", errors.Join(ErrInvalidUsername, err)
	}
	return q.User, nil
}
