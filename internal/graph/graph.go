// Package graph provides read-only traversal queries over the catalog's
// prerequisite relation. The catalog is immutable for the life of the
// process, so path results are memoized and every query is safe to call
// concurrently.
package graph

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/daehakro/courseplan/internal/catalog"
)

// pathCacheSize comfortably covers one curriculum's worth of courses.
const pathCacheSize = 128

// Service answers prerequisite-graph queries against one catalog.
type Service struct {
	catalog   *catalog.Catalog
	followUps map[string][]string
	paths     *lru.Cache[string, PathResult]
}

// New builds a Service, precomputing the follow-up index.
func New(cat *catalog.Catalog) *Service {
	followUps := make(map[string][]string)
	for _, course := range cat.Courses() {
		for _, p := range course.Prerequisites {
			followUps[p] = append(followUps[p], course.Name)
		}
	}
	for _, names := range followUps {
		sort.Strings(names)
	}

	cache, _ := lru.New[string, PathResult](pathCacheSize)
	return &Service{catalog: cat, followUps: followUps, paths: cache}
}

// FollowUps returns every course whose prerequisite list contains name,
// sorted by name. Nil when nothing depends on it.
func (s *Service) FollowUps(name string) []string {
	return s.followUps[name]
}

// PathResult holds every acyclic prerequisite chain terminating at a course.
// CyclesDetected reports that at least one branch was abandoned because a
// course reappeared in its own chain; the returned paths are then fewer or
// shorter than the raw relation implies.
type PathResult struct {
	Paths          [][]string
	CyclesDetected bool
}

// LearningPaths enumerates every prerequisite chain ending at name, each
// ordered prerequisite-first, target-last. A course with no prerequisites
// (or one absent from the catalog) yields the singleton path.
func (s *Service) LearningPaths(name string) PathResult {
	if cached, ok := s.paths.Get(name); ok {
		return cached
	}

	result := s.computePaths(name)
	s.paths.Add(name, result)
	return result
}

func (s *Service) computePaths(name string) PathResult {
	course, ok := s.catalog.Get(name)
	if !ok || len(course.Prerequisites) == 0 {
		return PathResult{Paths: [][]string{{name}}}
	}

	var result PathResult
	s.expand(name, nil, &result)

	// Chains were accumulated target-first; flip each to prerequisite-first.
	for _, path := range result.Paths {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}
	return result
}

// expand walks backward through prerequisites, building chains target-first.
func (s *Service) expand(name string, soFar []string, result *PathResult) {
	course, ok := s.catalog.Get(name)
	if !ok {
		return
	}
	for _, seen := range soFar {
		if seen == name {
			result.CyclesDetected = true
			return
		}
	}

	path := make([]string, len(soFar), len(soFar)+1)
	copy(path, soFar)
	path = append(path, name)

	if len(course.Prerequisites) == 0 {
		result.Paths = append(result.Paths, path)
		return
	}
	for _, p := range course.Prerequisites {
		s.expand(p, path, result)
	}
}

// Level returns the length of the longest prerequisite chain ending at the
// course; a leaf course has level 1.
func (s *Service) Level(name string) int {
	result := s.LearningPaths(name)
	level := 1
	for _, path := range result.Paths {
		if len(path) > level {
			level = len(path)
		}
	}
	return level
}
