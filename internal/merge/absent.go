package merge

// Absent is the deduplicated union of absent keys, in first-seen order.
type Absent struct {
	seen map[string]struct{}
	keys []string
}

// Add records keys, ignoring any already present.
func (a *Absent) Add(keys ...string) {
	if a.seen == nil {
		a.seen = make(map[string]struct{})
	}

	for _, k := range keys {
		if _, ok := a.seen[k]; ok {
			continue
		}

		a.seen[k] = struct{}{}
		a.keys = append(a.keys, k)
	}
}

// Keys returns the recorded keys.
func (a *Absent) Keys() []string {
	return append([]string(nil), a.keys...)
}

// Len returns the number of distinct keys.
func (a *Absent) Len() int {
	return len(a.keys)
}
