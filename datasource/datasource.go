// Copyright 2026 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package datasource drives a list or grid view's batched update API from snapshots.
//
// A [Source] owns the currently applied [diffable.Snapshot]. Every call to [Source.Apply] diffs
// the new snapshot against the applied one and issues the resulting index operations to the
// [View] inside a single batch, so the view never observes an inconsistent intermediate state.
package datasource

import (
	"slices"
	"sync"

	"znkr.io/diffable"
)

// View is the incremental-update surface of an external list or grid view.
//
// PerformBatchUpdates must defer visual updates until body returns. Within the body the four
// index operations are called with removal indices expressed against the pre-update arrangement
// and insertion indices against the post-update arrangement; the slices are sorted ascending.
type View interface {
	PerformBatchUpdates(body func())
	DeleteSections(indices []int)
	InsertSections(indices []int)
	DeleteItems(paths []diffable.IndexPath)
	InsertItems(paths []diffable.IndexPath)
}

// CellProvider produces the displayable representation for the item at the given index path.
type CellProvider[I comparable, Cell any] func(path diffable.IndexPath, item I) Cell

// Source owns the currently applied snapshot and reconciles it against new snapshots handed to
// [Source.Apply].
//
// All methods are safe for concurrent use; a mutex serializes applies with each other and with
// the count and cell queries, and calls into the view never overlap. The view itself is only
// ever called from within Apply.
type Source[S, I comparable, Cell any] struct {
	mu      sync.Mutex
	view    View
	provide CellProvider[I, Cell]
	applied *diffable.Snapshot[S, I]
}

// New returns a source driving the given view. The provider is consulted by [Source.Cell] to
// turn item identities into displayable cells; it may be nil if cells are produced elsewhere.
func New[S, I comparable, Cell any](view View, provide CellProvider[I, Cell]) *Source[S, I, Cell] {
	return &Source[S, I, Cell]{
		view:    view,
		provide: provide,
		applied: diffable.New[S, I](),
	}
}

// Apply reconciles the view with next. It computes the change set against the currently applied
// snapshot, commits a copy of next as the new applied snapshot, and issues the index operations
// to the view inside one batch: section removals, section insertions, item removals, item
// insertions, in that order. An empty change set issues no view calls at all, so applying the
// same snapshot twice is a no-op.
//
// Apply is synchronous and always runs to completion; each call fully re-diffs against whatever
// is applied at that point. The caller's snapshot is never retained or mutated.
func (src *Source[S, I, Cell]) Apply(next *diffable.Snapshot[S, I]) {
	src.mu.Lock()
	defer src.mu.Unlock()

	cs := diffable.Changes(src.applied, next)
	src.applied = next.Clone()
	if cs.IsEmpty() {
		return
	}

	src.view.PerformBatchUpdates(func() {
		src.view.DeleteSections(sortedIndices(cs.SectionRemovals))
		src.view.InsertSections(sortedIndices(cs.SectionInsertions))
		src.view.DeleteItems(sortedPaths(cs.ItemRemovals))
		src.view.InsertItems(sortedPaths(cs.ItemInsertions))
	})
}

// Snapshot returns a copy of the currently applied snapshot. Mutating it does not affect the
// source; hand it back via [Source.Apply] to take effect.
func (src *Source[S, I, Cell]) Snapshot() *diffable.Snapshot[S, I] {
	src.mu.Lock()
	defer src.mu.Unlock()
	return src.applied.Clone()
}

// NumberOfSections answers the view's section count query from the applied snapshot.
func (src *Source[S, I, Cell]) NumberOfSections() int {
	src.mu.Lock()
	defer src.mu.Unlock()
	return src.applied.NumberOfSections()
}

// NumberOfItems answers the view's item count query for the section at the given index.
// It returns 0 for a section index the applied snapshot does not have, so a view querying
// during a transient inconsistency gets an empty count instead of a failure.
func (src *Source[S, I, Cell]) NumberOfItems(sectionIndex int) int {
	src.mu.Lock()
	defer src.mu.Unlock()
	sec, ok := src.applied.SectionAt(sectionIndex)
	if !ok {
		return 0
	}
	return src.applied.NumberOfItems(sec)
}

// Cell resolves the item at the given index path through the cell provider. It reports false if
// the path does not exist in the applied snapshot or no provider is configured.
func (src *Source[S, I, Cell]) Cell(path diffable.IndexPath) (Cell, bool) {
	src.mu.Lock()
	item, ok := src.applied.ItemAt(path)
	src.mu.Unlock()
	if !ok || src.provide == nil {
		var zero Cell
		return zero, false
	}
	return src.provide(path, item), true
}

func sortedIndices(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

func sortedPaths(set map[diffable.IndexPath]struct{}) []diffable.IndexPath {
	out := make([]diffable.IndexPath, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b diffable.IndexPath) int {
		if a.Section != b.Section {
			return a.Section - b.Section
		}
		return a.Item - b.Item
	})
	return out
}
