package table

import (
	"strings"

	"github.com/nkiryanov/cookbook/internal/apperrors"
	"github.com/nkiryanov/cookbook/internal/models"
)

// FieldKind is the closed set of edit input kinds.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
	FieldSwitch
)

// Field describes one editable attribute of a collection item. Set
// performs the kind's coercion (decimal for numbers, bool for
// switches) and reports bad raw input.
type Field[T any] struct {
	Label       string
	Name        string
	Kind        FieldKind
	Placeholder string
	Get         func(item T) string
	Set         func(item *T, raw string) error
}

// Accessor reads and writes the implicit name attribute every
// collection item has.
type Accessor[T any] struct {
	Get func(item T) string
	Set func(item *T, value string)
}

type EditorConfig[T any] struct {
	// Label names the item kind in prompts ("Ingredient")
	Label string

	// Default seeds the form when adding a new item
	Default T

	// Name accesses the implicit name attribute; its field is always
	// first in the edit form
	Name Accessor[T]

	// Fields are the remaining edit inputs, in form order
	Fields []Field[T]

	// Columns are the read-mode columns, decoupled from Fields
	Columns []Column[T]

	// Items is the caller owned collection the editor starts from
	Items []T

	// OnMutate reports every committed change with the new collection.
	// The editor never talks to the network itself.
	OnMutate func(items []T)

	// Disabled blocks add/edit/delete (parent form is submitting)
	Disabled bool

	// Validate runs struct validation on submit
	Validate bool
}

// Editor is an in-memory add/edit/delete driver over a slice the
// enclosing form owns. All data lives client side until the parent
// form is saved; rows have no server identity and are addressed by
// position.
type Editor[T any] struct {
	cfg   EditorConfig[T]
	items []T

	pending   *T
	editIndex *int // nil while adding a new item

	confirmation bool
	confirmIndex int
}

func NewEditor[T any](cfg EditorConfig[T]) *Editor[T] {
	items := make([]T, len(cfg.Items))
	copy(items, cfg.Items)

	return &Editor[T]{cfg: cfg, items: items}
}

// Items returns the current collection.
func (e *Editor[T]) Items() []T {
	out := make([]T, len(e.items))
	copy(out, e.items)
	return out
}

// SetItems replaces the collection, discarding any pending edit.
func (e *Editor[T]) SetItems(items []T) {
	e.items = make([]T, len(items))
	copy(e.items, items)
	e.Cancel()
}

// Add opens the edit form seeded with the default item.
func (e *Editor[T]) Add() {
	if e.cfg.Disabled {
		return
	}
	item := e.cfg.Default
	e.pending = &item
	e.editIndex = nil
}

// Edit opens the form seeded with the item at index.
func (e *Editor[T]) Edit(index int) error {
	if e.cfg.Disabled {
		return nil
	}
	if index < 0 || index >= len(e.items) {
		return apperrors.ErrItemOutOfRange
	}

	item := e.items[index]
	e.pending = &item
	e.editIndex = &index
	return nil
}

// Pending returns the item currently being added or edited.
func (e *Editor[T]) Pending() (T, bool) {
	if e.pending == nil {
		var zero T
		return zero, false
	}
	return *e.pending, true
}

// Editing reports whether the form targets an existing row and which.
func (e *Editor[T]) Editing() (int, bool) {
	if e.editIndex == nil {
		return 0, false
	}
	return *e.editIndex, true
}

// SetField applies raw input to the pending item through the named
// field's coercion.
func (e *Editor[T]) SetField(name string, raw string) error {
	if e.pending == nil {
		return apperrors.ErrNoPendingItem
	}

	if name == "name" {
		e.cfg.Name.Set(e.pending, raw)
		return nil
	}
	for _, field := range e.cfg.Fields {
		if field.Name == name {
			return field.Set(e.pending, raw)
		}
	}
	return apperrors.ErrUnknownField
}

// Submit commits the pending item: replaces the edited row or appends
// a new one, reports the new collection through OnMutate and closes
// the form.
func (e *Editor[T]) Submit() error {
	if e.pending == nil {
		return apperrors.ErrNoPendingItem
	}

	if e.cfg.Validate {
		if err := models.Validate(*e.pending); err != nil {
			return err
		}
	}

	items := make([]T, len(e.items))
	copy(items, e.items)
	if e.editIndex != nil {
		items[*e.editIndex] = *e.pending
	} else {
		items = append(items, *e.pending)
	}

	e.items = items
	if e.cfg.OnMutate != nil {
		e.cfg.OnMutate(items)
	}

	e.pending = nil
	e.editIndex = nil
	return nil
}

// ConfirmDelete opens the delete confirmation for the row at index.
func (e *Editor[T]) ConfirmDelete(index int) error {
	if e.cfg.Disabled {
		return nil
	}
	if index < 0 || index >= len(e.items) {
		return apperrors.ErrItemOutOfRange
	}

	e.confirmation = true
	e.confirmIndex = index
	return nil
}

// Confirming returns the row index pending delete confirmation.
func (e *Editor[T]) Confirming() (int, bool) {
	return e.confirmIndex, e.confirmation
}

// SubmitDelete splices the confirmed row out of a copy and reports the
// new collection.
func (e *Editor[T]) SubmitDelete() {
	if !e.confirmation {
		return
	}

	items := make([]T, 0, len(e.items)-1)
	items = append(items, e.items[:e.confirmIndex]...)
	items = append(items, e.items[e.confirmIndex+1:]...)

	e.items = items
	if e.cfg.OnMutate != nil {
		e.cfg.OnMutate(items)
	}

	e.confirmation = false
	e.confirmIndex = 0
}

// Cancel discards any pending edit or delete confirmation.
func (e *Editor[T]) Cancel() {
	e.pending = nil
	e.editIndex = nil
	e.confirmation = false
	e.confirmIndex = 0
}

// Fields returns the full edit form: the implicit name field followed
// by the configured fields.
func (e *Editor[T]) Fields() []Field[T] {
	fields := make([]Field[T], 0, len(e.cfg.Fields)+1)
	fields = append(fields, Field[T]{
		Label:       "Name",
		Name:        "name",
		Kind:        FieldText,
		Placeholder: "Name",
		Get:         e.cfg.Name.Get,
		Set: func(item *T, raw string) error {
			e.cfg.Name.Set(item, raw)
			return nil
		},
	})
	return append(fields, e.cfg.Fields...)
}

// Columns returns the read-mode columns: implicit Name, the caller's
// columns, then Actions.
func (e *Editor[T]) Columns() []Column[T] {
	columns := make([]Column[T], 0, len(e.cfg.Columns)+2)
	columns = append(columns, Column[T]{
		Label:  "Name",
		Format: e.cfg.Name.Get,
	})
	columns = append(columns, e.cfg.Columns...)
	columns = append(columns, Column[T]{
		Label: "Actions",
		Format: func(T) string {
			if e.cfg.Disabled {
				return ""
			}
			return strings.Join([]string{"edit", "delete"}, " ")
		},
	})
	return columns
}
