// SPDX-License-Identifier: MIT

package sorting

// merge sorts v top-down with a midpoint split.
func (s *sorter) merge() bool {
	s.tmp = make([]int, len(s.v))

	return s.mergeSort(0, len(s.v))
}

// mergeSort sorts v[lo:hi].
func (s *sorter) mergeSort(lo, hi int) bool {
	if hi-lo < 2 {
		return true
	}
	if !s.e.Enter() {
		return false
	}
	defer s.e.Leave()

	mid := lo + (hi-lo)/2
	if !s.mergeSort(lo, mid) || !s.mergeSort(mid, hi) {
		return false
	}

	return s.mergeRuns(lo, mid, hi)
}

// mergeRuns merges the sorted runs v[lo:mid] and v[mid:hi]. Ties take the
// left element, which keeps the sort stable. Compare indices refer to the
// positions the two heads occupied before the merge started.
func (s *sorter) mergeRuns(lo, mid, hi int) bool {
	copy(s.tmp[lo:hi], s.v[lo:hi])
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if !s.compare(i, j) {
			return false
		}
		x := s.tmp[j]
		if s.tmp[i] <= s.tmp[j] {
			x = s.tmp[i]
			i++
		} else {
			j++
		}
		if !s.write(k, x) {
			return false
		}
		k++
	}
	for ; i < mid; i++ {
		if !s.write(k, s.tmp[i]) {
			return false
		}
		k++
	}
	for ; j < hi; j++ {
		if !s.write(k, s.tmp[j]) {
			return false
		}
		k++
	}

	return true
}

// quick sorts v with Lomuto partitioning around the last element.
// Already-sorted input hits the O(n²) worst case and recursion depth n−1.
func (s *sorter) quick() bool {
	return s.quickSort(0, len(s.v)-1)
}

// quickSort sorts v[lo..hi] inclusive.
func (s *sorter) quickSort(lo, hi int) bool {
	if lo >= hi {
		return true
	}
	if !s.e.Enter() {
		return false
	}
	defer s.e.Leave()

	p, ok := s.partition(lo, hi)
	if !ok {
		return false
	}

	return s.quickSort(lo, p-1) && s.quickSort(p+1, hi)
}

// partition places v[hi] at its final index and returns it.
func (s *sorter) partition(lo, hi int) (int, bool) {
	pivot := s.v[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if !s.compare(j, hi) {
			return 0, false
		}
		if s.v[j] < pivot {
			if i != j && !s.swap(i, j) {
				return 0, false
			}
			i++
		}
	}
	if i != hi && !s.swap(i, hi) {
		return 0, false
	}

	return i, true
}
