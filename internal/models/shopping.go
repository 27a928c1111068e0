package models

import "time"

type ShoppingList struct {
	ListID    int       `json:"list_id"`
	FamilyID  string    `json:"family_id"`
	CreatedBy *string   `json:"created_by,omitempty"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type ShoppingItem struct {
	ItemID    int       `json:"item_id"`
	ListID    int       `json:"list_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  string    `json:"quantity"`
	IsChecked bool      `json:"is_checked"`
	CreatedAt time.Time `json:"created_at"`
}
