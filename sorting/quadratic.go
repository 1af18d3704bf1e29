// SPDX-License-Identifier: MIT

package sorting

// selection moves the minimum of v[i:] to i on every pass.
func (s *sorter) selection() bool {
	n := len(s.v)
	for i := 0; i < n-1; i++ {
		m := i
		for j := i + 1; j < n; j++ {
			if !s.compare(m, j) {
				return false
			}
			if s.v[j] < s.v[m] {
				m = j
			}
		}
		if m != i && !s.swap(i, m) {
			return false
		}
	}

	return true
}

// bubble swaps adjacent inversions; each pass fixes the last unsorted slot.
func (s *sorter) bubble() bool {
	for end := len(s.v) - 1; end > 0; end-- {
		swapped := false
		for j := 0; j < end; j++ {
			if !s.compare(j, j+1) {
				return false
			}
			if s.v[j] > s.v[j+1] {
				if !s.swap(j, j+1) {
					return false
				}
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return true
}

// insertion shifts larger elements right and drops the key into the hole.
// Compare(j, j+1) pits v[j] against the key held for slot j+1.
func (s *sorter) insertion() bool {
	for i := 1; i < len(s.v); i++ {
		key := s.v[i]
		j := i - 1
		for ; j >= 0; j-- {
			if !s.compare(j, j+1) {
				return false
			}
			if s.v[j] <= key {
				break
			}
			if !s.write(j+1, s.v[j]) {
				return false
			}
		}
		if j+1 != i && !s.write(j+1, key) {
			return false
		}
	}

	return true
}

// heap builds a max-heap bottom-up, then repeatedly swaps the root to the
// end of the shrinking heap.
func (s *sorter) heap() bool {
	n := len(s.v)
	for i := n/2 - 1; i >= 0; i-- {
		if !s.siftDown(i, n) {
			return false
		}
	}
	for end := n - 1; end > 0; end-- {
		if !s.swap(0, end) || !s.siftDown(0, end) {
			return false
		}
	}

	return true
}

// siftDown restores the heap property below root within v[:size].
func (s *sorter) siftDown(root, size int) bool {
	for {
		child := 2*root + 1
		if child >= size {
			return true
		}
		if child+1 < size {
			if !s.compare(child, child+1) {
				return false
			}
			if s.v[child+1] > s.v[child] {
				child++
			}
		}
		if !s.compare(root, child) {
			return false
		}
		if s.v[root] >= s.v[child] {
			return true
		}
		if !s.swap(root, child) {
			return false
		}
		root = child
	}
}
