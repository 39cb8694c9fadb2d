package scoring

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CanonicalSort orders scored results by the deterministic canonical rules:
// 1. FinalScore: higher first
// 2. Weight against the top-ranked interest: higher first
// 3. Course name: ascending under Korean collation (course names are
//    non-ASCII; raw code-point order would interleave scripts arbitrarily)
func CanonicalSort(results []Result) {
	c := collate.New(language.Korean)
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.FinalScore != b.FinalScore {
			return a.FinalScore > b.FinalScore
		}
		if a.PrimaryWeight != b.PrimaryWeight {
			return a.PrimaryWeight > b.PrimaryWeight
		}
		return c.CompareString(a.Course.Name, b.Course.Name) < 0
	})
}
