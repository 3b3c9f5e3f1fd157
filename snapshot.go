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
	"slices"

	"znkr.io/diffable/internal/config"
)

// Snapshot describes the complete desired state of a sectioned list: an ordered list of section
// identifiers and, per section, an ordered list of item identifiers.
//
// Sections must be appended before items are appended to them. Appending an identity that is
// already present is a silent no-op, so appends are idempotent. By default item identities are
// unique across the whole snapshot; see [PerSectionItems].
//
// The zero value is an empty snapshot ready for use. Snapshots are not safe for concurrent
// mutation; use [Snapshot.Clone] to hand a copy to another owner.
type Snapshot[S, I comparable] struct {
	cfg      config.Config
	sections []S
	items    map[S][]I

	// De-duplication tracking. members holds per-section item membership and answers both
	// uniqueness checks under ScopeSection and presence checks during deletion. seen holds
	// snapshot-wide membership and is only populated under ScopeSnapshot.
	members map[S]map[I]struct{}
	seen    map[I]struct{}
}

// New returns an empty snapshot.
//
// The following option is supported: [PerSectionItems]
func New[S, I comparable](opts ...Option) *Snapshot[S, I] {
	return &Snapshot[S, I]{
		cfg: config.FromOptions(opts, config.PerSectionItems),
	}
}

func (s *Snapshot[S, I]) init() {
	if s.items == nil {
		s.items = make(map[S][]I)
		s.members = make(map[S]map[I]struct{})
		s.seen = make(map[I]struct{})
	}
}

// AppendSections appends the given sections in order to the end of the snapshot. Sections whose
// identity is already present are silently skipped, the rest keep their relative input order.
func (s *Snapshot[S, I]) AppendSections(sections ...S) {
	s.init()
	for _, sec := range sections {
		if _, ok := s.items[sec]; ok {
			continue
		}
		s.sections = append(s.sections, sec)
		s.items[sec] = nil
		s.members[sec] = make(map[I]struct{})
	}
}

// AppendItems appends the given items in order to the end of the named section's item list.
// Items whose identity is already present in the de-duplication scope are silently skipped, the
// rest keep their relative input order.
//
// The section must have been appended before; passing an unknown section violates the
// sections-before-items contract and panics.
func (s *Snapshot[S, I]) AppendItems(section S, items ...I) {
	s.init()
	member, ok := s.members[section]
	if !ok {
		panic("diffable: AppendItems on a section that was never appended")
	}
	for _, it := range items {
		if s.cfg.Scope == config.ScopeSnapshot {
			if _, dup := s.seen[it]; dup {
				continue
			}
			s.seen[it] = struct{}{}
		} else if _, dup := member[it]; dup {
			continue
		}
		member[it] = struct{}{}
		s.items[section] = append(s.items[section], it)
	}
}

// DeleteItems removes the given items from the named section's item list and retracts them from
// de-duplication tracking so they may be appended again later. Items not present in that section
// are ignored, as is an unknown section.
func (s *Snapshot[S, I]) DeleteItems(section S, items ...I) {
	member, ok := s.members[section]
	if !ok {
		return
	}
	drop := make(map[I]struct{}, len(items))
	for _, it := range items {
		if _, ok := member[it]; ok {
			drop[it] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return
	}
	s.items[section] = slices.DeleteFunc(s.items[section], func(it I) bool {
		_, ok := drop[it]
		return ok
	})
	for it := range drop {
		delete(member, it)
		delete(s.seen, it)
	}
}

// DeleteSections removes the given sections together with their items and tracking entries.
// Unknown sections are ignored.
func (s *Snapshot[S, I]) DeleteSections(sections ...S) {
	changed := false
	for _, sec := range sections {
		if _, ok := s.items[sec]; !ok {
			continue
		}
		for _, it := range s.items[sec] {
			delete(s.seen, it)
		}
		delete(s.items, sec)
		delete(s.members, sec)
		changed = true
	}
	if changed {
		s.sections = slices.DeleteFunc(s.sections, func(sec S) bool {
			_, ok := s.items[sec]
			return !ok
		})
	}
}

// DeleteAllItems removes every item from every section, keeping the section list intact.
func (s *Snapshot[S, I]) DeleteAllItems() {
	for sec := range s.items {
		s.items[sec] = nil
		s.members[sec] = make(map[I]struct{})
	}
	clear(s.seen)
}

// Reset restores the snapshot to its empty initial state, keeping the configured de-duplication
// scope.
func (s *Snapshot[S, I]) Reset() {
	s.sections = nil
	s.items = nil
	s.members = nil
	s.seen = nil
}

// NumberOfSections returns the number of sections in the snapshot.
func (s *Snapshot[S, I]) NumberOfSections() int {
	return len(s.sections)
}

// NumberOfItems returns the number of items in the named section, or 0 for an unknown section.
func (s *Snapshot[S, I]) NumberOfItems(section S) int {
	return len(s.items[section])
}

// SectionAt returns the section identifier at the given display index.
func (s *Snapshot[S, I]) SectionAt(index int) (S, bool) {
	if index < 0 || index >= len(s.sections) {
		var zero S
		return zero, false
	}
	return s.sections[index], true
}

// IndexOfSection returns the display index of the given section identifier.
func (s *Snapshot[S, I]) IndexOfSection(section S) (int, bool) {
	i := slices.Index(s.sections, section)
	return i, i >= 0
}

// ItemAt returns the item identifier at the given index path.
func (s *Snapshot[S, I]) ItemAt(path IndexPath) (I, bool) {
	if path.Section < 0 || path.Section >= len(s.sections) {
		var zero I
		return zero, false
	}
	list := s.items[s.sections[path.Section]]
	if path.Item < 0 || path.Item >= len(list) {
		var zero I
		return zero, false
	}
	return list[path.Item], true
}

// IndexPathOf returns the index path of the given item identifier. Under per-section
// de-duplication an identity may appear more than once, in which case the occurrence in the
// earliest section is returned.
func (s *Snapshot[S, I]) IndexPathOf(item I) (IndexPath, bool) {
	for si, sec := range s.sections {
		if _, ok := s.members[sec][item]; !ok {
			continue
		}
		if i := slices.Index(s.items[sec], item); i >= 0 {
			return IndexPath{Section: si, Item: i}, true
		}
	}
	return IndexPath{}, false
}

// SectionIdentifiers returns the ordered section identifiers. The returned slice is a copy.
func (s *Snapshot[S, I]) SectionIdentifiers() []S {
	return slices.Clone(s.sections)
}

// ItemIdentifiers returns the ordered item identifiers of the named section, or nil for an
// unknown section. The returned slice is a copy.
func (s *Snapshot[S, I]) ItemIdentifiers(section S) []I {
	return slices.Clone(s.items[section])
}

// Clone returns a deep copy of the snapshot. Mutating the copy never affects the original.
func (s *Snapshot[S, I]) Clone() *Snapshot[S, I] {
	c := &Snapshot[S, I]{
		cfg:      s.cfg,
		sections: slices.Clone(s.sections),
	}
	if s.items != nil {
		c.items = make(map[S][]I, len(s.items))
		c.members = make(map[S]map[I]struct{}, len(s.members))
		c.seen = make(map[I]struct{}, len(s.seen))
		for sec, list := range s.items {
			c.items[sec] = slices.Clone(list)
		}
		for sec, member := range s.members {
			m := make(map[I]struct{}, len(member))
			for it := range member {
				m[it] = struct{}{}
			}
			c.members[sec] = m
		}
		for it := range s.seen {
			c.seen[it] = struct{}{}
		}
	}
	return c
}
