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

// Package diffable maintains ordered, sectioned collections of identifiable items and computes
// the minimal set of insertions and removals needed to transition a list or grid view from one
// state to the next.
//
// The central type is [Snapshot], a value describing the complete desired state as an ordered
// list of section identifiers with an ordered list of item identifiers per section. [Changes]
// compares two snapshots and produces a [ChangeSet]: section and item insertions and removals
// with removal indices expressed against the pre-update arrangement and insertion indices against
// the post-update arrangement, which is the contract batched list-view update APIs consume.
//
// Reordering is not computed as a distinct operation: a moved section or item shows up as a
// paired removal and insertion.
//
// Note: For driving a concrete view from snapshots, please see [znkr.io/diffable/datasource].
//
// [znkr.io/diffable/datasource]: https://pkg.go.dev/znkr.io/diffable/datasource
package diffable
