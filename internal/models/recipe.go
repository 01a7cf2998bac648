package models

import (
	"github.com/shopspring/decimal"
)

type Ingredient struct {
	Name        string          `json:"name"`
	Measurement string          `json:"measurement"`
	Amount      decimal.Decimal `json:"amount"`
}

type Nutrient struct {
	Name   string          `json:"name"`
	Unit   string          `json:"unit"`
	Amount decimal.Decimal `json:"amount"`
}

type Recipe struct {
	Meta
	RecipeID           string       `json:"recipeId"`
	Name               string       `json:"name"`
	Instructions       string       `json:"instructions"`
	PrepareTimeMinutes *int         `json:"prepareTimeMinutes,omitempty"`
	Ingredients        []Ingredient `json:"ingredients,omitempty"`
	Nutrients          []Nutrient   `json:"nutrients,omitempty"`
}

// RecipeUpdate is the partial mutation body. Nil fields are omitted so
// the server keeps their current values.
type RecipeUpdate struct {
	Name               *string      `json:"name,omitempty" validate:"omitnil,min=1"`
	Instructions       *string      `json:"instructions,omitempty"`
	PrepareTimeMinutes *int         `json:"prepareTimeMinutes,omitempty" validate:"omitnil,min=0"`
	Ingredients        []Ingredient `json:"ingredients,omitempty"`
	Nutrients          []Nutrient   `json:"nutrients,omitempty"`
}
