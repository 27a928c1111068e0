package server

import (
	"context"
	"errors"
	"time"

	"github.com/hray3182/FamilyBoard/internal/ai"
	"github.com/hray3182/FamilyBoard/internal/models"
)

// In-memory stores so handler tests run without a database.

type fakeEventStore struct {
	events []*models.Event
	nextID int
	err    error
}

func (f *fakeEventStore) Create(_ context.Context, e *models.Event) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	e.EventID = f.nextID
	e.CreatedAt = time.Now()
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEventStore) GetByDateRange(_ context.Context, familyID string, from, to time.Time) ([]*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Event
	for _, e := range f.events {
		if e.FamilyID != familyID {
			continue
		}
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventStore) GetByID(_ context.Context, id int) (*models.Event, error) {
	for _, e := range f.events {
		if e.EventID == id {
			return e, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeEventStore) Delete(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	for i, e := range f.events {
		if e.EventID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeTaskStore struct {
	tasks  []*models.Task
	nextID int
	err    error
}

func (f *fakeTaskStore) Create(_ context.Context, t *models.Task) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	t.TaskID = f.nextID
	f.tasks = append(f.tasks, t)
	return nil
}

func (f *fakeTaskStore) GetByFamilyID(_ context.Context, familyID string) ([]*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Task
	for _, t := range f.tasks {
		if t.FamilyID == familyID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskStore) GetByID(_ context.Context, id int) (*models.Task, error) {
	for _, t := range f.tasks {
		if t.TaskID == id {
			return t, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeTaskStore) UpdateStatus(_ context.Context, id int, status string) error {
	for _, t := range f.tasks {
		if t.TaskID == id {
			t.Status = status
		}
	}
	return nil
}

func (f *fakeTaskStore) Delete(_ context.Context, id int) error {
	for i, t := range f.tasks {
		if t.TaskID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeShoppingStore struct {
	lists      []*models.ShoppingList
	items      []*models.ShoppingItem
	nextListID int
	nextItemID int
}

func (f *fakeShoppingStore) CreateList(_ context.Context, l *models.ShoppingList) error {
	f.nextListID++
	l.ListID = f.nextListID
	f.lists = append(f.lists, l)
	return nil
}

func (f *fakeShoppingStore) GetListsByFamilyID(_ context.Context, familyID string) ([]*models.ShoppingList, error) {
	var out []*models.ShoppingList
	for _, l := range f.lists {
		if l.FamilyID == familyID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeShoppingStore) DeleteList(_ context.Context, id int) error {
	for i, l := range f.lists {
		if l.ListID == id {
			f.lists = append(f.lists[:i], f.lists[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeShoppingStore) AddItem(_ context.Context, it *models.ShoppingItem) error {
	f.nextItemID++
	it.ItemID = f.nextItemID
	f.items = append(f.items, it)
	return nil
}

func (f *fakeShoppingStore) GetItemsByListID(_ context.Context, listID int) ([]*models.ShoppingItem, error) {
	var out []*models.ShoppingItem
	for _, it := range f.items {
		if it.ListID == listID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeShoppingStore) SetItemChecked(_ context.Context, id int, checked bool) error {
	for _, it := range f.items {
		if it.ItemID == id {
			it.IsChecked = checked
		}
	}
	return nil
}

func (f *fakeShoppingStore) DeleteItem(_ context.Context, id int) error {
	for i, it := range f.items {
		if it.ItemID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeVacationStore struct {
	vacations []*models.Vacation
	nextID    int
}

func (f *fakeVacationStore) Create(_ context.Context, v *models.Vacation) error {
	f.nextID++
	v.VacationID = f.nextID
	f.vacations = append(f.vacations, v)
	return nil
}

func (f *fakeVacationStore) GetByFamilyID(_ context.Context, familyID string) ([]*models.Vacation, error) {
	var out []*models.Vacation
	for _, v := range f.vacations {
		if v.FamilyID == familyID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVacationStore) Delete(_ context.Context, id int) error {
	for i, v := range f.vacations {
		if v.VacationID == id {
			f.vacations = append(f.vacations[:i], f.vacations[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeParser struct {
	draft *ai.EventDraft
	err   error
}

func (f *fakeParser) ParseEvent(_ context.Context, _ string, _ time.Time, _ []string) (*ai.EventDraft, error) {
	return f.draft, f.err
}
