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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// snap builds a snapshot from section/items pairs in order.
func snap(sections ...struct {
	id    string
	items []string
}) *Snapshot[string, string] {
	s := New[string, string]()
	for _, sec := range sections {
		s.AppendSections(sec.id)
		s.AppendItems(sec.id, sec.items...)
	}
	return s
}

func sec(id string, items ...string) struct {
	id    string
	items []string
} {
	return struct {
		id    string
		items []string
	}{id, items}
}

func intset(is ...int) map[int]struct{} {
	out := make(map[int]struct{}, len(is))
	for _, i := range is {
		out[i] = struct{}{}
	}
	return out
}

func pathset(ps ...IndexPath) map[IndexPath]struct{} {
	out := make(map[IndexPath]struct{}, len(ps))
	for _, p := range ps {
		out[p] = struct{}{}
	}
	return out
}

func TestChanges(t *testing.T) {
	tests := []struct {
		name          string
		applied, next *Snapshot[string, string]
		want          ChangeSet
	}{
		{
			name:    "identical",
			applied: snap(sec("a", "1", "2"), sec("b", "3")),
			next:    snap(sec("a", "1", "2"), sec("b", "3")),
			want: ChangeSet{
				SectionInsertions: intset(),
				SectionRemovals:   intset(),
				ItemInsertions:    pathset(),
				ItemRemovals:      pathset(),
			},
		},
		{
			name:    "both-nil",
			applied: nil,
			next:    nil,
			want: ChangeSet{
				SectionInsertions: intset(),
				SectionRemovals:   intset(),
				ItemInsertions:    pathset(),
				ItemRemovals:      pathset(),
			},
		},
		{
			name:    "empty-to-populated",
			applied: snap(),
			next:    snap(sec("a", "1", "2", "3"), sec("b", "4", "5", "6")),
			want: ChangeSet{
				SectionInsertions: intset(0, 1),
				SectionRemovals:   intset(),
				ItemInsertions: pathset(
					IndexPath{0, 0}, IndexPath{0, 1}, IndexPath{0, 2},
					IndexPath{1, 0}, IndexPath{1, 1}, IndexPath{1, 2},
				),
				ItemRemovals: pathset(),
			},
		},
		{
			name:    "populated-to-empty",
			applied: snap(sec("a", "1"), sec("b", "2")),
			next:    snap(),
			want: ChangeSet{
				SectionInsertions: intset(),
				SectionRemovals:   intset(0, 1),
				ItemInsertions:    pathset(),
				ItemRemovals:      pathset(),
			},
		},
		{
			// A freshly inserted section brings all its items as insertions at the post-update
			// section index.
			name:    "section-inserted-between",
			applied: snap(sec("a", "1"), sec("b", "2")),
			next:    snap(sec("a", "1"), sec("c", "7", "8"), sec("b", "2")),
			want: ChangeSet{
				SectionInsertions: intset(1),
				SectionRemovals:   intset(),
				ItemInsertions:    pathset(IndexPath{1, 0}, IndexPath{1, 1}),
				ItemRemovals:      pathset(),
			},
		},
		{
			// Item removals are indexed against the section's pre-update arrangement.
			name:    "item-removed-from-retained-section",
			applied: snap(sec("a", "x", "y", "z")),
			next:    snap(sec("a", "x", "z")),
			want: ChangeSet{
				SectionInsertions: intset(),
				SectionRemovals:   intset(),
				ItemInsertions:    pathset(),
				ItemRemovals:      pathset(IndexPath{0, 1}),
			},
		},
		{
			// Spec case: section a disappears, section b keeps its item and gains one. b's
			// insertion is indexed by its post-update section index 0.
			name:    "mixed-section-and-item-change",
			applied: snap(sec("a", "1", "2"), sec("b", "3")),
			next:    snap(sec("b", "3", "4")),
			want: ChangeSet{
				SectionInsertions: intset(),
				SectionRemovals:   intset(0),
				ItemInsertions:    pathset(IndexPath{0, 1}),
				ItemRemovals:      pathset(),
			},
		},
		{
			// Item moved to the front of a retained section: a paired removal (pre-update row)
			// and insertion (post-update row), never a move operation.
			name:    "item-reorder-within-section",
			applied: snap(sec("a", "1", "2", "3")),
			next:    snap(sec("a", "3", "1", "2")),
			want: ChangeSet{
				SectionInsertions: intset(),
				SectionRemovals:   intset(),
				ItemInsertions:    pathset(IndexPath{0, 0}),
				ItemRemovals:      pathset(IndexPath{0, 2}),
			},
		},
		{
			// Items crossing retained sections: a removal in the old owner, an insertion in the
			// new owner.
			name:    "item-moved-across-sections",
			applied: snap(sec("a", "1", "2"), sec("b", "3")),
			next:    snap(sec("a", "1"), sec("b", "3", "2")),
			want: ChangeSet{
				SectionInsertions: intset(),
				SectionRemovals:   intset(),
				ItemInsertions:    pathset(IndexPath{1, 1}),
				ItemRemovals:      pathset(IndexPath{0, 1}),
			},
		},
		{
			// Retained sections shift position without identity changes to their left: item
			// edits must follow the section's pre- and post-update indices.
			name:    "retained-section-shifts",
			applied: snap(sec("a", "1"), sec("b", "2", "3")),
			next:    snap(sec("b", "2")),
			want: ChangeSet{
				SectionInsertions: intset(),
				SectionRemovals:   intset(0),
				ItemInsertions:    pathset(),
				ItemRemovals:      pathset(IndexPath{1, 1}),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Changes(tt.applied, tt.next)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Changes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChangesDoesNotMutate(t *testing.T) {
	applied := snap(sec("a", "1", "2"), sec("b", "3"))
	next := snap(sec("b", "3", "4"))

	Changes(applied, next)

	if diff := cmp.Diff([]string{"a", "b"}, applied.SectionIdentifiers()); diff != "" {
		t.Errorf("applied mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"3", "4"}, next.ItemIdentifiers("b")); diff != "" {
		t.Errorf("next mutated (-want +got):\n%s", diff)
	}
}

// A section moved without identity changes comes out as a paired section removal and insertion,
// with the reinserted section treated as entirely new content.
func TestChangesSectionMove(t *testing.T) {
	applied := snap(sec("a", "1"), sec("b", "2"))
	next := snap(sec("b", "2"), sec("a", "1"))

	got := Changes(applied, next)

	if len(got.SectionRemovals) != 1 || len(got.SectionInsertions) != 1 {
		t.Errorf("got %d removals and %d insertions, want 1 and 1",
			len(got.SectionRemovals), len(got.SectionInsertions))
	}
	if len(got.ItemInsertions) != 1 || len(got.ItemRemovals) != 0 {
		t.Errorf("got %d item insertions and %d item removals, want 1 and 0",
			len(got.ItemInsertions), len(got.ItemRemovals))
	}
}

func TestChangesIdempotent(t *testing.T) {
	s := snap(sec("a", "1", "2"), sec("b", "3"))
	if got := Changes(s, s.Clone()); !got.IsEmpty() {
		t.Errorf("diff against own clone is not empty: %+v", got)
	}
}
