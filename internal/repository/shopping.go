package repository

import (
	"context"

	"github.com/hray3182/FamilyBoard/internal/database"
	"github.com/hray3182/FamilyBoard/internal/models"
)

type ShoppingRepository struct {
	db *database.DB
}

func NewShoppingRepository(db *database.DB) *ShoppingRepository {
	return &ShoppingRepository{db: db}
}

func (r *ShoppingRepository) CreateList(ctx context.Context, list *models.ShoppingList) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO shopping_list (family_id, created_by, name)
		 VALUES ($1, $2, $3)
		 RETURNING list_id, created_at`,
		list.FamilyID, list.CreatedBy, list.Name,
	).Scan(&list.ListID, &list.CreatedAt)
}

func (r *ShoppingRepository) GetListsByFamilyID(ctx context.Context, familyID string) ([]*models.ShoppingList, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT list_id, family_id, created_by, name, created_at
		 FROM shopping_list WHERE family_id = $1
		 ORDER BY created_at ASC`,
		familyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []*models.ShoppingList
	for rows.Next() {
		list := &models.ShoppingList{}
		if err := rows.Scan(&list.ListID, &list.FamilyID, &list.CreatedBy,
			&list.Name, &list.CreatedAt); err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}

func (r *ShoppingRepository) DeleteList(ctx context.Context, listID int) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM shopping_list WHERE list_id = $1`,
		listID,
	)
	return err
}

func (r *ShoppingRepository) AddItem(ctx context.Context, item *models.ShoppingItem) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO shopping_item (list_id, name, category, quantity, is_checked)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING item_id, created_at`,
		item.ListID, item.Name, item.Category, item.Quantity, item.IsChecked,
	).Scan(&item.ItemID, &item.CreatedAt)
}

func (r *ShoppingRepository) GetItemsByListID(ctx context.Context, listID int) ([]*models.ShoppingItem, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT item_id, list_id, name, category, quantity, is_checked, created_at
		 FROM shopping_item WHERE list_id = $1
		 ORDER BY category ASC, created_at ASC`,
		listID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.ShoppingItem
	for rows.Next() {
		item := &models.ShoppingItem{}
		if err := rows.Scan(&item.ItemID, &item.ListID, &item.Name, &item.Category,
			&item.Quantity, &item.IsChecked, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ShoppingRepository) SetItemChecked(ctx context.Context, itemID int, checked bool) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE shopping_item SET is_checked = $1 WHERE item_id = $2`,
		checked, itemID,
	)
	return err
}

func (r *ShoppingRepository) DeleteItem(ctx context.Context, itemID int) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM shopping_item WHERE item_id = $1`,
		itemID,
	)
	return err
}
