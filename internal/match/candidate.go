package match

import (
	"sort"
	"strings"

	"villagejoin/internal/locality"
)

// DefaultMinScore is the lowest similarity RankCandidates keeps.
const DefaultMinScore = 0.6

// Candidate is a boundary key that an absent key may have been meant to match.
type Candidate struct {
	Key string
	// Score is the normalized Levenshtein similarity (0-1).
	Score float64
	// SameDistrict is true when city and district agree exactly.
	SameDistrict bool
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every key against absent and returns those scoring at
// least minScore, best first. Candidates in the same city and district rank
// ahead of others with the same score.
func RankCandidates(absent string, keys []string, minScore float64) CandidateList {
	prefix := districtPrefix(absent)

	var candidates CandidateList

	for _, k := range keys {
		if k == absent {
			continue
		}

		score := LevenshteinNormalized(absent, k)
		if score < minScore {
			continue
		}

		candidates = append(candidates, Candidate{
			Key:          k,
			Score:        score,
			SameDistrict: prefix != "" && districtPrefix(k) == prefix,
		})
	}

	candidates.Sort()

	return candidates
}

// Sort orders by score, then same-district first, then key.
func (cl CandidateList) Sort() {
	sort.SliceStable(cl, func(i, j int) bool {
		if cl[i].Score != cl[j].Score {
			return cl[i].Score > cl[j].Score
		}

		if cl[i].SameDistrict != cl[j].SameDistrict {
			return cl[i].SameDistrict
		}

		return cl[i].Key < cl[j].Key
	})
}

// Top returns at most n candidates.
func (cl CandidateList) Top(n int) CandidateList {
	if n <= 0 {
		return nil
	}

	if len(cl) <= n {
		return cl
	}

	return cl[:n]
}

// districtPrefix returns "city-district" of a three-part key, or "".
func districtPrefix(key string) string {
	i := strings.LastIndex(key, locality.Separator)
	if i <= 0 {
		return ""
	}

	return key[:i]
}
