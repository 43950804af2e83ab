package pipeline

import (
	"villagejoin/internal/match"
)

// Suggestion pairs an absent key with the boundary keys it most resembles.
type Suggestion struct {
	Absent     string
	Candidates match.CandidateList
}

// Suggest ranks boundary keys for every absent key of res, keeping at most
// limit candidates scoring at least minScore. Absent keys with no candidate
// are left out.
func Suggest(res *Result, limit int, minScore float64) []Suggestion {
	keys := res.Merged.Keys()

	var out []Suggestion

	for _, absent := range res.Absent {
		ranked := match.RankCandidates(absent, keys, minScore).Top(limit)
		if len(ranked) == 0 {
			continue
		}

		out = append(out, Suggestion{Absent: absent, Candidates: ranked})
	}

	return out
}
