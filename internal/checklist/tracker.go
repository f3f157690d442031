// Package checklist tracks launch checklist progress. State is read from a
// durable snapshot when one exists and from the checklist fixture
// otherwise; every change rewrites the full snapshot, which from then on
// overrides the fixture.
package checklist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/dashboard/internal/model"
	"github.com/idilsaglam/dashboard/internal/store"
)

// ErrIndexOutOfRange is returned by Toggle for a position outside the
// current list. Nothing is written in that case.
var ErrIndexOutOfRange = errors.New("index out of range")

// Fixture is the fallback tier: it must return a fresh, mutable list on
// every call.
type Fixture interface {
	Checklist(ctx context.Context) ([]model.ChecklistItem, error)
}

// Origin says which tier a State was read from.
type Origin int

const (
	OriginNone Origin = iota
	OriginSnapshot
	OriginFixture
)

func (o Origin) String() string {
	switch o {
	case OriginSnapshot:
		return "snapshot"
	case OriginFixture:
		return "fixture"
	}
	return "none"
}

// State is the ordered checklist as currently displayed. Items are
// referenced by position.
type State struct {
	Items  []model.ChecklistItem
	Origin Origin
}

func (s State) Progress() Progress { return ProgressOf(s.Items) }

// Tracker reads and writes checklist state across the two tiers.
type Tracker struct {
	snapshots store.Store
	fixture   Fixture
	key       string
	logger    *log.Logger
}

// NewTracker uses key as the snapshot slot name.
func NewTracker(snapshots store.Store, fixture Fixture, key string, logger *log.Logger) *Tracker {
	return &Tracker{snapshots: snapshots, fixture: fixture, key: key, logger: logger}
}

// Load returns the snapshot when present and parsable, else the fixture.
// A fixture failure is logged and yields an empty list along with the
// error.
func (t *Tracker) Load(ctx context.Context) (State, error) {
	items, origin, err := t.current(ctx)
	if err != nil {
		t.logger.Error("loading checklist", "err", err)
		return State{Items: []model.ChecklistItem{}}, err
	}
	return State{Items: items, Origin: origin}, nil
}

// Toggle sets the completed flag of the item at index and writes the whole
// list back as the new snapshot.
func (t *Tracker) Toggle(ctx context.Context, index int, completed bool) (State, error) {
	items, _, err := t.current(ctx)
	if err != nil {
		t.logger.Error("updating checklist", "err", err)
		return State{}, err
	}
	if index < 0 || index >= len(items) {
		return State{}, fmt.Errorf("%w: have %d, got %d", ErrIndexOutOfRange, len(items), index)
	}
	items[index].Completed = completed
	if err := t.write(ctx, items); err != nil {
		t.logger.Error("saving checklist", "err", err)
		return State{}, err
	}
	t.logger.Debug("checklist item updated", "index", index, "completed", completed)
	return State{Items: items, Origin: OriginSnapshot}, nil
}

// Reset discards the snapshot and reloads the fixture with every flag
// cleared. Without confirmation it does nothing and reports false.
// The cleared list is not written back: until the next toggle the fixture
// is authoritative again.
func (t *Tracker) Reset(ctx context.Context, confirm func() bool) (State, bool, error) {
	if confirm == nil || !confirm() {
		return State{}, false, nil
	}
	if err := t.snapshots.Delete(ctx, t.key); err != nil {
		t.logger.Error("resetting checklist", "err", err)
		return State{}, true, fmt.Errorf("delete snapshot: %w", err)
	}
	items, err := t.fixture.Checklist(ctx)
	if err != nil {
		t.logger.Error("resetting checklist", "err", err)
		return State{Items: []model.ChecklistItem{}}, true, err
	}
	for i := range items {
		items[i].Completed = false
	}
	t.logger.Info("checklist reset", "items", len(items))
	return State{Items: items, Origin: OriginFixture}, true, nil
}

// HasSnapshot reports whether the durable tier currently holds a slot.
func (t *Tracker) HasSnapshot(ctx context.Context) (bool, error) {
	_, ok, err := t.snapshots.Get(ctx, t.key)
	return ok, err
}

func (t *Tracker) current(ctx context.Context) ([]model.ChecklistItem, Origin, error) {
	if items, ok := t.readSnapshot(ctx); ok {
		return items, OriginSnapshot, nil
	}
	items, err := t.fixture.Checklist(ctx)
	if err != nil {
		return nil, OriginNone, fmt.Errorf("checklist fixture: %w", err)
	}
	return items, OriginFixture, nil
}

// readSnapshot treats an unreadable or unparsable slot as absent.
func (t *Tracker) readSnapshot(ctx context.Context) ([]model.ChecklistItem, bool) {
	b, ok, err := t.snapshots.Get(ctx, t.key)
	if err != nil {
		t.logger.Warn("reading checklist snapshot", "key", t.key, "err", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var items []model.ChecklistItem
	if err := json.Unmarshal(b, &items); err != nil {
		t.logger.Warn("ignoring unparsable checklist snapshot", "key", t.key, "err", err)
		return nil, false
	}
	if items == nil {
		items = []model.ChecklistItem{}
	}
	return items, true
}

func (t *Tracker) write(ctx context.Context, items []model.ChecklistItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	return t.snapshots.Set(ctx, t.key, b)
}
