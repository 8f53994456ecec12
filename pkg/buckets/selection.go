package buckets

import "sort"

// Selection is caller-owned toggle state keyed by bucket index. Builders
// never read it.
type Selection map[int]bool

// Toggle flips the state of bucket i and returns the new state.
func (s Selection) Toggle(i int) bool {
	s.Set(i, !s[i])
	return s[i]
}

// Set marks bucket i as toggled or clears it.
func (s Selection) Set(i int, on bool) {
	if on {
		s[i] = true
		return
	}
	delete(s, i)
}

// IsToggled reports whether bucket i is selected.
func (s Selection) IsToggled(i int) bool {
	return s[i]
}

// Indices returns the toggled bucket indices in ascending order.
func (s Selection) Indices() []int {
	res := make([]int, 0, len(s))
	for i := range s {
		res = append(res, i)
	}
	sort.Ints(res)
	return res
}

// Apply copies the selection onto the Toggled field of bs.
func (s Selection) Apply(bs []Bucket) {
	for i := range bs {
		bs[i].Toggled = s[bs[i].Index]
	}
}
