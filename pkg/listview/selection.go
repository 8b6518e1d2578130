package listview

import "sort"

// Selection tracks which entity ids are marked for bulk operations.
//
// Entries deliberately survive page, sort, and search changes so bulk
// operations can act on ids accumulated across pages; they are pruned only
// when their entities are deleted. All operations return a new map and
// leave the receiver untouched.
type Selection map[string]bool

// Toggle flips membership of id.
func (sel Selection) Toggle(id string) Selection {
	next := sel.clone()
	next[id] = !next[id]
	return next
}

// ToggleAll implements the page-scoped select-all checkbox: if every id in
// ids is selected the whole selection is cleared, otherwise the selection
// becomes exactly ids.
func (sel Selection) ToggleAll(ids []string) Selection {
	if len(ids) > 0 && sel.allSelected(ids) {
		return Selection{}
	}
	next := Selection{}
	for _, id := range ids {
		next[id] = true
	}
	return next
}

// Without removes the given ids, used after delete and bulk-delete so the
// selection never holds entries for entities that no longer exist.
func (sel Selection) Without(ids ...string) Selection {
	next := sel.clone()
	for _, id := range ids {
		delete(next, id)
	}
	return next
}

// Clear empties the selection.
func (sel Selection) Clear() Selection {
	return Selection{}
}

// Has reports whether id is selected.
func (sel Selection) Has(id string) bool {
	return sel[id]
}

// Count returns the number of selected ids.
func (sel Selection) Count() int {
	n := 0
	for _, on := range sel {
		if on {
			n++
		}
	}
	return n
}

// IDs returns the selected ids in stable order.
func (sel Selection) IDs() []string {
	ids := make([]string, 0, len(sel))
	for id, on := range sel {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func (sel Selection) allSelected(ids []string) bool {
	for _, id := range ids {
		if !sel[id] {
			return false
		}
	}
	return true
}

func (sel Selection) clone() Selection {
	next := make(Selection, len(sel))
	for id, on := range sel {
		next[id] = on
	}
	return next
}
