package table

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/nkiryanov/cookbook/internal/models"
)

// Preconfigured editors for the nested collections: ingredients and
// nutrients of a recipe, items of a shopping list. Each pairs an edit
// field list with separate read-mode columns.

func NewIngredientEditor(items []models.Ingredient, onMutate func([]models.Ingredient)) *Editor[models.Ingredient] {
	return NewEditor(EditorConfig[models.Ingredient]{
		Label:   "Ingredient",
		Default: models.Ingredient{},
		Name: Accessor[models.Ingredient]{
			Get: func(i models.Ingredient) string { return i.Name },
			Set: func(i *models.Ingredient, v string) { i.Name = v },
		},
		Fields: []Field[models.Ingredient]{
			{
				Label:       "Measurement",
				Name:        "measurement",
				Kind:        FieldText,
				Placeholder: "Measurement",
				Get:         func(i models.Ingredient) string { return i.Measurement },
				Set: func(i *models.Ingredient, raw string) error {
					i.Measurement = raw
					return nil
				},
			},
			{
				Label: "Amount",
				Name:  "amount",
				Kind:  FieldNumber,
				Get:   func(i models.Ingredient) string { return i.Amount.String() },
				Set: func(i *models.Ingredient, raw string) error {
					amount, err := decimal.NewFromString(raw)
					if err != nil {
						return err
					}
					i.Amount = amount
					return nil
				},
			},
		},
		Columns: []Column[models.Ingredient]{
			{Label: "Measurement", Format: func(i models.Ingredient) string { return i.Measurement }},
			{Label: "Amount", Format: func(i models.Ingredient) string { return i.Amount.String() }},
		},
		Items:    items,
		OnMutate: onMutate,
	})
}

func NewNutrientEditor(items []models.Nutrient, onMutate func([]models.Nutrient)) *Editor[models.Nutrient] {
	return NewEditor(EditorConfig[models.Nutrient]{
		Label:   "Nutrient",
		Default: models.Nutrient{},
		Name: Accessor[models.Nutrient]{
			Get: func(n models.Nutrient) string { return n.Name },
			Set: func(n *models.Nutrient, v string) { n.Name = v },
		},
		Fields: []Field[models.Nutrient]{
			{
				Label:       "Unit",
				Name:        "unit",
				Kind:        FieldText,
				Placeholder: "Unit",
				Get:         func(n models.Nutrient) string { return n.Unit },
				Set: func(n *models.Nutrient, raw string) error {
					n.Unit = raw
					return nil
				},
			},
			{
				Label: "Amount",
				Name:  "amount",
				Kind:  FieldNumber,
				Get:   func(n models.Nutrient) string { return n.Amount.String() },
				Set: func(n *models.Nutrient, raw string) error {
					amount, err := decimal.NewFromString(raw)
					if err != nil {
						return err
					}
					n.Amount = amount
					return nil
				},
			},
		},
		Columns: []Column[models.Nutrient]{
			{Label: "Unit", Format: func(n models.Nutrient) string { return n.Unit }},
			{Label: "Amount", Format: func(n models.Nutrient) string { return n.Amount.String() }},
		},
		Items:    items,
		OnMutate: onMutate,
	})
}

func NewShoppingItemEditor(items []models.ShoppingListItem, onMutate func([]models.ShoppingListItem)) *Editor[models.ShoppingListItem] {
	return NewEditor(EditorConfig[models.ShoppingListItem]{
		Label:   "Shopping List Item",
		Default: models.ShoppingListItem{},
		Name: Accessor[models.ShoppingListItem]{
			Get: func(i models.ShoppingListItem) string { return i.Name },
			Set: func(i *models.ShoppingListItem, v string) { i.Name = v },
		},
		Fields: []Field[models.ShoppingListItem]{
			{
				Label:       "Measurement",
				Name:        "measurement",
				Kind:        FieldText,
				Placeholder: "Measurement",
				Get:         func(i models.ShoppingListItem) string { return i.Measurement },
				Set: func(i *models.ShoppingListItem, raw string) error {
					i.Measurement = raw
					return nil
				},
			},
			{
				Label: "Amount",
				Name:  "amount",
				Kind:  FieldNumber,
				Get:   func(i models.ShoppingListItem) string { return i.Amount.String() },
				Set: func(i *models.ShoppingListItem, raw string) error {
					amount, err := decimal.NewFromString(raw)
					if err != nil {
						return err
					}
					i.Amount = amount
					return nil
				},
			},
			{
				Label: "Completed",
				Name:  "completed",
				Kind:  FieldSwitch,
				Get:   func(i models.ShoppingListItem) string { return strconv.FormatBool(i.Completed) },
				Set: func(i *models.ShoppingListItem, raw string) error {
					completed, err := strconv.ParseBool(raw)
					if err != nil {
						return err
					}
					i.Completed = completed
					return nil
				},
			},
		},
		Columns: []Column[models.ShoppingListItem]{
			{Label: "Measurement", Format: func(i models.ShoppingListItem) string { return i.Measurement }},
			{Label: "Amount", Format: func(i models.ShoppingListItem) string { return i.Amount.String() }},
			{
				Label:  "Completed",
				Center: true,
				Format: func(i models.ShoppingListItem) string {
					if i.Completed {
						return "x"
					}
					return "-"
				},
			},
		},
		Items:    items,
		OnMutate: onMutate,
	})
}
