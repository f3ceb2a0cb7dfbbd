package catalog

import "fmt"

type (
	RecipeNotFound struct {
		ID int64
	}

	UserNotFound struct {
		Username string
	}

	DuplicateUser struct {
		Username string
	}

	CategoryNotFound struct {
		Name string
	}
)

func (r RecipeNotFound) Error() string {
	return fmt.Sprintf("recipe %v not found", r.ID)
}

func (u UserNotFound) Error() string {
	return fmt.Sprintf("user %v not found", u.Username)
}

func (d DuplicateUser) Error() string {
	return fmt.Sprintf("user %v already exists", d.Username)
}

func (c CategoryNotFound) Error() string {
	return fmt.Sprintf("category %v not found", c.Name)
}
