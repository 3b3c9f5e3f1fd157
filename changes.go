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

package diffable

import "znkr.io/diffable/internal/myers"

// IndexPath locates an item within a rendered arrangement as a pair of section index and item
// index within that section.
type IndexPath struct {
	Section int
	Item    int
}

// ChangeSet describes the section and item insertions and removals necessary to transform the
// rendering of one snapshot into another's.
//
// Removal indices and index paths are expressed against the pre-update arrangement, insertion
// indices and index paths against the post-update arrangement. This asymmetry is the contract of
// batched list-view update APIs: removals are located in the old arrangement, insertions in the
// new one.
//
// All four sets are unordered.
type ChangeSet struct {
	SectionInsertions map[int]struct{}
	SectionRemovals   map[int]struct{}
	ItemInsertions    map[IndexPath]struct{}
	ItemRemovals      map[IndexPath]struct{}
}

// IsEmpty reports whether the change set contains no changes.
func (c ChangeSet) IsEmpty() bool {
	return len(c.SectionInsertions) == 0 && len(c.SectionRemovals) == 0 &&
		len(c.ItemInsertions) == 0 && len(c.ItemRemovals) == 0
}

// Changes compares next against applied and returns the change set necessary to transform the
// rendering of applied into that of next. Neither snapshot is mutated; a nil snapshot is treated
// as empty.
//
// Sections removed from applied produce a single section removal, their items disappear
// implicitly. Sections new in next produce a section insertion plus an item insertion for every
// item they carry: a freshly inserted section is treated as entirely new content and is never
// diffed against a former state. Sections present in both snapshots get a per-item minimal edit
// script, with removals mapped through the section's pre-update index and insertions through its
// post-update index.
func Changes[S, I comparable](applied, next *Snapshot[S, I]) ChangeSet {
	cs := ChangeSet{
		SectionInsertions: make(map[int]struct{}),
		SectionRemovals:   make(map[int]struct{}),
		ItemInsertions:    make(map[IndexPath]struct{}),
		ItemRemovals:      make(map[IndexPath]struct{}),
	}

	var oldSecs, newSecs []S
	if applied != nil {
		oldSecs = applied.sections
	}
	if next != nil {
		newSecs = next.sections
	}

	rx, ry := myers.Diff(oldSecs, newSecs)

	// Walk the section edit script in lockstep. Runs of deletions advance only the old index,
	// runs of insertions only the new index, matches advance both, which keeps s and t pointing
	// at the pre-update and post-update positions of the same retained section.
	n, m := len(oldSecs), len(newSecs)
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			cs.SectionRemovals[s] = struct{}{}
			s++
		}
		for t < m && ry[t] {
			cs.SectionInsertions[t] = struct{}{}
			for row := range next.items[newSecs[t]] {
				cs.ItemInsertions[IndexPath{Section: t, Item: row}] = struct{}{}
			}
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			sec := oldSecs[s]
			xitems, yitems := applied.items[sec], next.items[sec]
			irx, iry := myers.Diff(xitems, yitems)
			for i := range xitems {
				if irx[i] {
					cs.ItemRemovals[IndexPath{Section: s, Item: i}] = struct{}{}
				}
			}
			for j := range yitems {
				if iry[j] {
					cs.ItemInsertions[IndexPath{Section: t, Item: j}] = struct{}{}
				}
			}
			s++
			t++
		}
	}
	return cs
}
