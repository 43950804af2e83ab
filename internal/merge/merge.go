package merge

import (
	"villagejoin/internal/dataset"
)

// Into sets base[key][field] for every key of supplemental that base holds and
// returns the keys it does not hold, in supplemental order.
//
// Into mutates the records of base in place and returns base for chaining.
// It never adds, removes or renames keys of base, so the absent keys of one
// call do not depend on earlier calls.
func Into[V any](base *dataset.Boundaries, supplemental *dataset.Table[V], field string) (*dataset.Boundaries, []string) {
	var absent []string

	supplemental.Each(func(key string, v V) bool {
		rec, ok := base.Get(key)
		if !ok {
			absent = append(absent, key)

			return true
		}

		rec.Set(field, v)

		return true
	})

	return base, absent
}

// Count returns how many records of base carry field.
func Count(base *dataset.Boundaries, field string) int {
	n := 0

	base.Each(func(_ string, rec *dataset.Attributes) bool {
		if rec.Has(field) {
			n++
		}

		return true
	})

	return n
}
