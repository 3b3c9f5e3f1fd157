// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package myers implements Myers' algorithm to compute a minimal edit script between two
// sequences of comparable identifiers.
//
// The implementation uses the linear space variant described in section 4.2 of the paper. The
// inputs here are ordered identifier lists of UI-sized collections, so in contrast to diff tools
// that operate on whole files no cost-limiting heuristics are applied: the result is always a
// minimal script.
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to
// y. Every vertex corresponds to a state, a step to the right represents a deletion of an element
// of x, a step down represents an insertion of an element of y, and when both elements are
// identical a diagonal edge represents a match. Myers' algorithm finds a minimum-cost path from
// the top left (i.e. x) to the bottom right (i.e. y) where horizontal and vertical edges have a
// cost of 1 and diagonal edges have a cost of 0.
//
// Let a D-path be a path that has exactly D non-diagonal edges. The two lemmas the code below
// relies on:
//
// Lemma 1: A D-path must end on diagonal k in {-D, -D+2, ..., D-2, D}. As a corollary, a D-path
// ends on odd diagonals when D is odd and on even diagonals when D is even.
//
// Lemma 2: A furthest reaching D-path on diagonal k can without loss of generality be decomposed
// into a furthest reaching (D-1)-path on diagonal k-1, followed by a horizontal edge, or on
// diagonal k+1, followed by a vertical edge, in both cases followed by the longest possible
// sequence of diagonal edges.
//
// The linear space refinement searches forwards and backwards at the same time until two paths
// overlap, which yields a middle sequence of diagonals of an optimal path and two smaller
// subproblems to recurse into.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
//
// The algorithm was independently discovered by Esko Ukkonen:
//
// Ukkonen, E. Algorithms for approximate string matching. Information and Control, Volume 64,
// Issues 1-3, 100-118 (1985). https://doi.org/10.1016/S0019-9958(85)80046-2
package myers
