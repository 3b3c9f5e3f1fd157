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

package myers

import "math"

// Diff compares the contents of x and y and returns a minimal edit script necessary to convert
// from one to the other as a pair of result vectors: rx[s] is set if x[s] must be deleted and
// ry[t] is set if y[t] must be inserted. Deletions are therefore indexed against the original
// sequence and insertions against the final sequence.
//
// Both result vectors carry a border of one extra trailing element that makes it easier to
// iterate over deletions and insertions in lockstep.
func Diff[T comparable](x, y []T) (rx, ry []bool) {
	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	// Allocate result vectors.
	r := make([]bool, (len(x) + len(y) + 2))
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]

	// Handle trivial cases without doing anything extra.
	switch {
	case smin != smax && tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return rx, ry
	case smin == smax && tmin != tmax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return rx, ry
	case smin == smax && tmin == tmax:
		return rx, ry
	}

	// Reduce the problem size by skipping all elements that are unique to x or y. Those are
	// always deletions or insertions respectively. Identifier lists make this reduction very
	// effective: identities are unique per sequence, so everything that survives it appears
	// exactly once on both sides.
	//
	// While we're at it, also assign an integer ID to every non-unique element to use for
	// comparisons during the application of Myers algorithm:
	//
	//  - scan x and assign a negative id to every element first seen in x
	//  - scan y and change the sign of every id that also appears in y
	unique := make(map[T]int, smax-smin)
	for s := smin; s < smax; s++ {
		if unique[x[s]] == 0 {
			unique[x[s]] = -(len(unique) + 1)
		}
	}
	ny := 0
	for t := tmin; t < tmax; t++ {
		if id := unique[y[t]]; id < 0 {
			// appears in both x and y
			unique[y[t]] = -id
			ny++
		} else if id > 0 {
			ny++
		}
	}
	nx := 0
	for s := smin; s < smax; s++ {
		if unique[x[s]] > 0 {
			nx++
		}
	}

	// Use the IDs to generate the subset of shared elements to apply Myers algorithm on. If an id
	// is > 0, the element appears in both x and y, otherwise it only appears in one of them.
	// xidx and yidx map positions in the reduced inputs back to positions in x and y.
	x0 := make([]int, 0, nx)
	y0 := make([]int, 0, ny)
	xidx := make([]int, 0, nx)
	yidx := make([]int, 0, ny)
	for s := smin; s < smax; s++ {
		if id := unique[x[s]]; id > 0 {
			xidx = append(xidx, s)
			x0 = append(x0, id)
		} else {
			// Unique to x, always a deletion.
			rx[s] = true
		}
	}
	for t := tmin; t < tmax; t++ {
		if id := unique[y[t]]; id > 0 {
			yidx = append(yidx, t)
			y0 = append(y0, id)
		} else {
			// Unique to y, always an insertion.
			ry[t] = true
		}
	}

	// Perform Myers algorithm on the reduced integer inputs.
	var m myers
	m.xidx, m.yidx = xidx, yidx
	m.rx, m.ry = rx, ry
	smin0, smax0, tmin0, tmax0 := m.init(x0, y0)
	m.compare(smin0, smax0, tmin0, tmax0)

	return rx, ry
}

type myers struct {
	// Inputs to compare, reduced to integer IDs.
	x, y []int

	// v-arrays for forwards and backwards iteration respectively. A v-array stores the furthest
	// reaching endpoint of a d-path in diagonal k in v[v0+k] where v0 is the offset that
	// translates k in [-d, d] to k0 = v0+k in [0, 2*d]. The endpoints only store the s-coordinate
	// since t = s - k.
	vf, vb []int
	v0     int

	// Mapping of s, t indices to the location in the result vectors.
	xidx, yidx []int

	// Result vectors.
	rx, ry []bool
}

func (m *myers) init(x, y []int) (smin, smax, tmin, tmax int) {
	smin, tmin = 0, 0
	smax, tmax = len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	N, M := smax-smin, tmax-tmin
	diagonals := N + M
	vlen := 2*diagonals + 3    // +1 for the middle point and +2 for the borders
	buf := make([]int, 2*vlen) // allocate space for vf and vb with a single allocation

	m.x = x
	m.y = y
	m.vf = buf[:vlen]
	m.vb = buf[vlen:]
	m.v0 = diagonals + 1 // +1 for the middle point
	return
}

// compare finds an optimal d-path from (smin, tmin) to (smax, tmax) and marks its non-diagonal
// edges in the result vectors.
//
// Important: x[smin:smax] and y[tmin:tmax] must not have a common prefix or a common suffix.
func (m *myers) compare(smin, smax, tmin, tmax int) {
	if smin == smax {
		// s is empty, therefore everything in tmin to tmax is an insertion.
		for t := tmin; t < tmax; t++ {
			m.ry[m.yidx[t]] = true
		}
	} else if tmin == tmax {
		// t is empty, therefore everything in smin to smax is a deletion.
		for s := smin; s < smax; s++ {
			m.rx[m.xidx[s]] = true
		}
	} else {
		// Use split to divide the input into three pieces:
		//
		//   (1) A, possibly empty, rect (smin, tmin) to (s0, t0)
		//   (2) A, possibly empty, sequence of diagonals (matches) (s0, t0) to (s1, t1)
		//   (3) A, possibly empty, rect (s1, t1) to (smax, tmax)
		//
		// (1) and (3) will not have a common suffix or a common prefix, so we can use them
		// directly as inputs to compare.
		s0, s1, t0, t1 := m.split(smin, smax, tmin, tmax)

		// Recurse into (1) and (3).
		m.compare(smin, s0, tmin, t0)
		m.compare(s1, smax, t1, tmax)
	}
}

// split finds the endpoints of a, potentially empty, sequence of diagonals in the middle of an
// optimal path from (smin, tmin) to (smax, tmax).
//
// Important: x[smin:smax] and y[tmin:tmax] must not have a common prefix or a common suffix and
// they may not both be empty.
func (m *myers) split(smin, smax, tmin, tmax int) (s0, s1, t0, t1 int) {
	N, M := smax-smin, tmax-tmin
	x, y := m.x, m.y
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// Bounds for k. Since t = s - k, we can determine the min and max for k using: k = s - t.
	kmin, kmax := smin-tmax, smax-tmin

	// In contrast to the paper, we're going to number all diagonals with consistent k's by
	// centering the forwards and backwards searches around different midpoints. This way, we
	// don't need to convert k's when checking for overlap and it improves readability.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// We know from Corollary 1 that the optimal diff length is going to be odd or even as (N-M)
	// is odd or even. We're going to use this below to decide on when to check for path overlaps.
	odd := (N-M)%2 != 0

	// Since split is never called with a common prefix or suffix, we know that x != y, therefore
	// there is no 0-path and the d=0 iteration would produce the trivial result below.
	// Consequently, we can start at d=1 which allows us to omit special handling of d==0 in the
	// hot k-loops.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax

	// We know from Lemma 3 that there's a d-path with d = ⌈(N + M)/2⌉. Therefore, we can omit
	// the loop condition and instead blindly increment d.
	for d := 1; ; d++ {
		// Each loop iteration, we're trying to find a d-path by first searching forwards and then
		// searching backwards. If two paths overlap, we have found a d-path.

		// Forwards iteration.
		//
		// First determine which diagonals k to search. Originally, we would search k = [fmid-d,
		// fmid+d] in steps of 2, but that would lead us to move outside the edit grid and would
		// require more memory, more work, and special handling for s and t coordinates outside x
		// and y. Instead we put tighter bounds on k, adjusting min and max when at the boundary.
		//
		// Additionally, we're initializing the v-array such that the top and left hand border can
		// be handled with the same logic as any other value (for that we allocated an extra two
		// elements up front).
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		// The k-loop searches for the furthest reaching d-path in diagonal k. The v-array
		// contains the endpoints of the furthest reaching (d-1)-paths, which by Lemma 1 are
		// disjoint from the elements we're writing here.
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0 // k as an index into vf

			// According to Lemma 2 there are two possible furthest reaching d-paths: one coming
			// from diagonal k-1 via a horizontal edge and one from diagonal k+1 via a vertical
			// edge, both followed by the longest possible sequence of diagonals.
			var s int
			if vf[k0-1] < vf[k0+1] {
				// The vertical edge is implied by t = s - k.
				s = vf[k0+1]
			} else {
				// Handling the v[k-1] == v[k+1] case here prioritizes deletions over insertions.
				s = vf[k0-1] + 1
			}
			t := s - k

			// Then follow the diagonals as long as possible.
			s0, t0 := s, t
			for s < smax && t < tmax && x[s] == y[t] {
				s++
				t++
			}

			// Then store the endpoint of the furthest reaching d-path.
			vf[k0] = s

			// Potentially, check for an overlap with a backwards d-path. We're done when we
			// found it.
			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return s0, s, t0, t
			}
		}

		// Backwards iteration.
		//
		// This is mostly analogous to the forward iteration.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			s0, t0 := s, t
			for s > smin && t > tmin && x[s-1] == y[t-1] {
				s--
				t--
			}

			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[v0+k] {
				return s, s0, t, t0
			}
		}
	}
}
