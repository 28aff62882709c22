package dex

import "slices"

// Favorites is an insertion-ordered set of entry ids.
type Favorites struct {
	ids []int
}

// Toggle removes id if present, otherwise adds it. It returns whether id is
// a favorite afterwards.
func (f *Favorites) Toggle(id int) bool {
	if i := slices.Index(f.ids, id); i >= 0 {
		f.ids = slices.Delete(f.ids, i, i+1)
		return false
	}

	f.ids = append(f.ids, id)
	return true
}

func (f *Favorites) Has(id int) bool {
	return slices.Contains(f.ids, id)
}

func (f *Favorites) Len() int {
	return len(f.ids)
}

// IDs returns a copy of the favorite ids in the order they were added.
func (f *Favorites) IDs() []int {
	return append([]int{}, f.ids...)
}
