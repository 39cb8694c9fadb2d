package graph

import "sort"

// Relation is the pairwise diagnostic between two courses, each field a
// direct comparison of the courses' own prerequisite and follow-up sets.
type Relation struct {
	// IsPrerequisite: b is a prerequisite of a.
	IsPrerequisite bool
	// IsFollowUp: a is a prerequisite of b.
	IsFollowUp          bool
	SharedPrerequisites []string
	SharedFollowUps     []string
}

// RelationOf computes the diagnostic for the pair (a, b). Unknown names
// behave as courses with empty prerequisite and follow-up sets.
func (s *Service) RelationOf(a, b string) Relation {
	courseA, okA := s.catalog.Get(a)
	courseB, okB := s.catalog.Get(b)

	rel := Relation{}
	if okA {
		rel.IsPrerequisite = courseA.RequiresPrerequisite(b)
	}
	if okB {
		rel.IsFollowUp = courseB.RequiresPrerequisite(a)
	}
	if okA && okB {
		rel.SharedPrerequisites = intersect(courseA.Prerequisites, courseB.Prerequisites)
	}
	rel.SharedFollowUps = intersect(s.FollowUps(a), s.FollowUps(b))
	return rel
}

// CoreCourses returns, within a caller-supplied subset of course names, the
// hub courses: those with at least two follow-ups also inside the subset,
// sorted by follow-up count descending, name ascending on ties.
func (s *Service) CoreCourses(subset []string) []string {
	inSubset := make(map[string]bool, len(subset))
	for _, n := range subset {
		inSubset[n] = true
	}

	type hub struct {
		name  string
		count int
	}
	var hubs []hub
	for _, n := range subset {
		count := 0
		for _, f := range s.FollowUps(n) {
			if inSubset[f] {
				count++
			}
		}
		if count >= 2 {
			hubs = append(hubs, hub{name: n, count: count})
		}
	}

	sort.Slice(hubs, func(i, j int) bool {
		if hubs[i].count != hubs[j].count {
			return hubs[i].count > hubs[j].count
		}
		return hubs[i].name < hubs[j].name
	})

	names := make([]string, len(hubs))
	for i, h := range hubs {
		names[i] = h.name
	}
	return names
}

func intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	inB := make(map[string]bool, len(b))
	for _, n := range b {
		inB[n] = true
	}
	var out []string
	for _, n := range a {
		if inB[n] {
			out = append(out, n)
		}
	}
	return out
}
