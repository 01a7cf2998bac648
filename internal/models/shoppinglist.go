package models

type ShoppingListItem struct {
	Ingredient
	Completed bool `json:"completed"`
}

type ShoppingList struct {
	Meta
	ListID    string             `json:"listId"`
	Name      string             `json:"name"`
	ExpiresIn int                `json:"expiresIn,omitempty"`
	Items     []ShoppingListItem `json:"items,omitempty"`
}

type ShoppingListUpdate struct {
	Name      *string            `json:"name,omitempty" validate:"omitnil,min=1"`
	ExpiresIn *int               `json:"expiresIn,omitempty" validate:"omitnil,min=0"`
	Items     []ShoppingListItem `json:"items,omitempty"`
}
