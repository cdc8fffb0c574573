package model

// ToggleID flips membership of id in ids: present ids are removed, absent
// ids appended. Multi-select drafts are sets, order carries no meaning.
func ToggleID(ids []int64, id int64) []int64 {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}

// ContainsID reports membership of id in ids.
func ContainsID(ids []int64, id int64) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
