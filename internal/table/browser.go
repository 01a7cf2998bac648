package table

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nkiryanov/cookbook/internal/alerts"
	"github.com/nkiryanov/cookbook/internal/format"
	"github.com/nkiryanov/cookbook/internal/logger"
	"github.com/nkiryanov/cookbook/internal/models"
)

// Service is what a Browser drives: one resource client.
type Service[T models.TransferObject] interface {
	List(ctx context.Context, params models.Params) (models.Results[T], error)
	Delete(ctx context.Context, itemID string) (string, error)
	SupportsWrite() bool
	Resource() string
}

type BrowserConfig[T models.TransferObject] struct {
	// Title names the resource in alerts and the empty state ("Recipes")
	Title string

	Service Service[T]
	Alerts  *alerts.Queue
	Logger  logger.Logger

	// ResourceID extracts the server id used for deletes
	ResourceID func(item T) string

	// ResourceLabel names an item in confirmation prompts and alerts.
	// Must tolerate nil (no item selected).
	ResourceLabel func(item *T) string

	// Columns are the caller's columns; Create Time and Actions are
	// appended by the browser.
	Columns []Column[T]

	// Actions are extra per-item affordances, shown before edit/delete
	Actions []Action[T]

	// Params fixes limit/status/sortOrder for every page. NextToken is
	// managed by the browser itself.
	Params models.Params

	// ManuallyPage stops automatic page chaining: loading goes false
	// after every page and LoadMore re-arms it.
	ManuallyPage bool

	// DisableCreate and DisableEdit suppress the respective
	// affordances. Both are forced for read-only services.
	DisableCreate bool
	DisableEdit   bool

	// OnLoadMore overrides the load-more affordance availability even
	// when no next token remains
	OnLoadMore func()
}

// Footer is the render model of the table footer.
type Footer struct {
	Loading     bool
	CanLoadMore bool
	CanCreate   bool
}

// Browser accumulates pages of a listed resource and drives the
// confirm-then-delete flow. State updates are applied only while the
// browser's generation is current, so completions that race a Close
// are silent no-ops.
type Browser[T models.TransferObject] struct {
	cfg BrowserConfig[T]

	mu        sync.Mutex
	items     []T
	nextToken string
	loading   bool
	inflight  bool

	confirmation  bool
	confirmItem   *T
	confirmSubmit bool

	gen uint64
}

func NewBrowser[T models.TransferObject](cfg BrowserConfig[T]) *Browser[T] {
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNoOp()
	}
	if !cfg.Service.SupportsWrite() {
		cfg.DisableCreate = true
		cfg.DisableEdit = true
	}

	return &Browser[T]{
		cfg:     cfg,
		loading: true,
	}
}

// Items returns the accumulated item list.
func (b *Browser[T]) Items() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// Loading reports whether another page fetch is wanted.
func (b *Browser[T]) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

// NextToken returns the current pagination cursor, empty at end of list.
func (b *Browser[T]) NextToken() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nextToken
}

// Poll issues the next page fetch if loading is wanted and nothing is
// in flight. Call it whenever the view renders; it is a no-op
// otherwise. Failures are surfaced through the alert queue, previously
// accumulated items are kept.
func (b *Browser[T]) Poll(ctx context.Context) error {
	b.mu.Lock()
	if !b.loading || b.inflight {
		b.mu.Unlock()
		return nil
	}
	b.inflight = true
	gen := b.gen
	params := b.cfg.Params
	params.NextToken = b.nextToken
	b.mu.Unlock()

	results, err := b.cfg.Service.List(ctx, params)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen != gen {
		// The view went away while the fetch was in flight
		return nil
	}
	b.inflight = false

	if err != nil {
		b.loading = false
		b.cfg.Logger.Warn("Failed to list resource", "resource", b.cfg.Service.Resource(), "error", err)
		b.cfg.Alerts.Error(fmt.Sprintf("Failed to list %s: %v", strings.ToLower(b.cfg.Title), err))
		return err
	}

	b.items = append(b.items, results.Items...)
	b.nextToken = results.NextToken
	b.loading = results.NextToken != "" && !b.cfg.ManuallyPage
	return nil
}

// LoadMore re-arms loading when more pages remain. With a caller
// override configured it always fires the override instead.
func (b *Browser[T]) LoadMore() {
	if b.cfg.OnLoadMore != nil {
		b.cfg.OnLoadMore()
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.nextToken != "" {
		b.loading = true
	}
}

// Refresh drops everything and re-enters the initial loading state.
func (b *Browser[T]) Refresh() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

// reset must be called with the lock held.
func (b *Browser[T]) reset() {
	b.items = nil
	b.nextToken = ""
	b.loading = true
	b.confirmation = false
	b.confirmItem = nil
	b.confirmSubmit = false
}

// Close invalidates the browser: any in-flight completion is
// discarded. Safe to call more than once.
func (b *Browser[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gen++
	b.loading = false
	b.inflight = false
}

// ConfirmDelete opens the delete confirmation for an item.
func (b *Browser[T]) ConfirmDelete(item T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.confirmSubmit {
		return
	}
	b.confirmation = true
	b.confirmItem = &item
}

// CancelDelete discards the pending confirmation. Ignored while the
// delete request is in flight.
func (b *Browser[T]) CancelDelete() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.confirmSubmit {
		return
	}
	b.confirmation = false
	b.confirmItem = nil
}

// Confirming returns the item pending delete confirmation, if any.
func (b *Browser[T]) Confirming() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.confirmItem == nil {
		var zero T
		return zero, false
	}
	return *b.confirmItem, b.confirmation
}

// SubmitDelete issues the delete for the confirmed item. On success
// the whole table resets to the initial loading state so the next Poll
// refetches from page one; the accumulated list is never patched
// locally. On failure the list is kept and the confirmation closes.
func (b *Browser[T]) SubmitDelete(ctx context.Context) error {
	b.mu.Lock()
	if !b.confirmation || b.confirmItem == nil || b.confirmSubmit {
		b.mu.Unlock()
		return nil
	}
	b.confirmSubmit = true
	item := *b.confirmItem
	gen := b.gen
	b.mu.Unlock()

	label := b.cfg.ResourceLabel(&item)
	_, err := b.cfg.Service.Delete(ctx, b.cfg.ResourceID(item))

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen != gen {
		return nil
	}

	if err != nil {
		b.cfg.Logger.Warn("Failed to delete item", "resource", b.cfg.Service.Resource(), "error", err)
		b.cfg.Alerts.Error(fmt.Sprintf("Failed to delete %s: %v", label, err))
		b.confirmation = false
		b.confirmItem = nil
		b.confirmSubmit = false
		return err
	}

	b.cfg.Alerts.Success(fmt.Sprintf("Successfully deleted %s.", label))
	b.reset()
	return nil
}

// Columns composes the full ordered column list: caller columns, the
// fixed Create Time column, then Actions.
func (b *Browser[T]) Columns() []Column[T] {
	columns := make([]Column[T], 0, len(b.cfg.Columns)+2)
	columns = append(columns, b.cfg.Columns...)

	columns = append(columns, Column[T]{
		Label:  "Create Time",
		Center: true,
		Format: func(item T) string {
			return format.DateTime(item.Created())
		},
	})

	columns = append(columns, Column[T]{
		Label:  "Actions",
		Center: true,
		Format: func(item T) string {
			labels := make([]string, 0, len(b.cfg.Actions)+2)
			for _, action := range b.cfg.Actions {
				if action.When == nil || action.When(item) {
					labels = append(labels, action.Label)
				}
			}
			if !b.cfg.DisableEdit {
				labels = append(labels, "edit")
			}
			labels = append(labels, "delete")
			return strings.Join(labels, " ")
		},
	})

	return columns
}

// Footer is the footer render model: a loading indicator, or the
// load-more and create controls.
func (b *Browser[T]) Footer() Footer {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.loading {
		return Footer{Loading: true}
	}
	return Footer{
		CanLoadMore: b.nextToken != "" || b.cfg.OnLoadMore != nil,
		CanCreate:   !b.cfg.DisableCreate,
	}
}
