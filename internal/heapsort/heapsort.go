// Package heapsort sorts integer sequences in place with a binary max-heap.
package heapsort

// Sort orders s ascending in place. It is not stable.
func Sort(s []int) {
	n := len(s)

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end)
	}
}

// siftDown restores the heap property for the subtree at root within s[:size]
func siftDown(s []int, root, size int) {
	largest := root
	left := 2*root + 1
	right := 2*root + 2

	if left < size && s[left] > s[largest] {
		largest = left
	}
	if right < size && s[right] > s[largest] {
		largest = right
	}

	if largest != root {
		s[root], s[largest] = s[largest], s[root]
		siftDown(s, largest, size)
	}
}
