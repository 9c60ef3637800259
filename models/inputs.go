package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// RegisterInput is a registration form, customer or staff depending on
// the path it is posted to. Mirrors the backend's RegisterDto.
type RegisterInput struct {
	Name            string `json:"name" validate:"required,min=2"`
	Username        string `json:"username" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// ItemInput is the add/edit menu item form. Price is cents.
type ItemInput struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Price       int64            `json:"price" validate:"gte=0"`
	Ingredients []ItemIngredient `json:"ingredients,omitempty"`
}

// TaxRateInput is the tax form: a percentage, e.g. 2 for 2%.
type TaxRateInput struct {
	Percent float64 `validate:"gte=0,lte=100"`
}

// EditUserInput updates an account via /api/auth/user/update/{id}.
type EditUserInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
}

// CheckInput runs struct-tag validation and returns the first problem,
// or nil when the form is acceptable.
func CheckInput(v any) error {
	return validate.Struct(v)
}
