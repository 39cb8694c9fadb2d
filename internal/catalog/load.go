package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/daehakro/courseplan/internal/domain"
)

//go:embed data/curriculum.yaml
var defaultCurriculum []byte

// courseDoc mirrors the YAML shape of one course entry.
type courseDoc struct {
	Name               string         `yaml:"name"`
	Code               string         `yaml:"code"`
	Category           string         `yaml:"category"`
	Term               string         `yaml:"term"`
	Credits            string         `yaml:"credits"`
	LectureHours       int            `yaml:"lecture_hours"`
	LabHours           int            `yaml:"lab_hours"`
	Description        string         `yaml:"description"`
	Prerequisites      []string       `yaml:"prerequisites"`
	InterestWeights    map[string]int `yaml:"interest_weights"`
	Replaces           []string       `yaml:"replaces"`
	IntroducedFromTerm string         `yaml:"introduced_from_term"`
	AlwaysRecommend    bool           `yaml:"always_recommend"`
}

// catalogDoc mirrors the top-level YAML artifact.
type catalogDoc struct {
	Scoring  string                         `yaml:"scoring"`
	Courses  []courseDoc                    `yaml:"courses"`
	Roadmaps map[string]map[string][]string `yaml:"roadmaps"`
}

// Parse builds a Catalog from raw YAML.
func Parse(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(doc.Courses) == 0 {
		return nil, fmt.Errorf("catalog has no courses")
	}

	courses := make([]domain.Course, 0, len(doc.Courses))
	for _, cd := range doc.Courses {
		course, err := cd.toDomain()
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	opts := []Option{}
	switch domain.StrategyName(doc.Scoring) {
	case domain.StrategyRoadmap:
		opts = append(opts, WithStrategy(domain.StrategyRoadmap))
	case domain.StrategyWeighted, "":
		// weighted is the default
	default:
		return nil, fmt.Errorf("unknown scoring strategy %q", doc.Scoring)
	}

	for area, byTerm := range doc.Roadmaps {
		for termStr, names := range byTerm {
			term, err := domain.ParseTerm(termStr)
			if err != nil {
				return nil, fmt.Errorf("roadmap %s: %w", area, err)
			}
			opts = append(opts, WithRoadmap(domain.InterestArea(area), term, names...))
		}
	}

	return New(courses, opts...)
}

func (cd courseDoc) toDomain() (domain.Course, error) {
	term, err := domain.ParseTerm(cd.Term)
	if err != nil {
		return domain.Course{}, fmt.Errorf("course %q: %w", cd.Name, err)
	}

	var weights map[domain.InterestArea]int
	if len(cd.InterestWeights) > 0 {
		weights = make(map[domain.InterestArea]int, len(cd.InterestWeights))
		for area, w := range cd.InterestWeights {
			weights[domain.InterestArea(area)] = w
		}
	}

	introducedFrom := 0
	if cd.IntroducedFromTerm != "" {
		introTerm, err := domain.ParseTerm(cd.IntroducedFromTerm)
		if err != nil {
			return domain.Course{}, fmt.Errorf("course %q: introduced_from_term: %w", cd.Name, err)
		}
		introducedFrom = introTerm.Index()
	}

	return domain.Course{
		Name:               cd.Name,
		Code:               cd.Code,
		Category:           domain.CourseCategory(cd.Category),
		Term:               term,
		Credits:            cd.Credits,
		LectureHours:       cd.LectureHours,
		LabHours:           cd.LabHours,
		Description:        cd.Description,
		Prerequisites:      cd.Prerequisites,
		InterestWeights:    weights,
		Replaces:           cd.Replaces,
		IntroducedFromTerm: introducedFrom,
		AlwaysRecommend:    cd.AlwaysRecommend,
	}, nil
}

// LoadFile reads and parses a catalog YAML artifact from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded industrial-engineering curriculum.
func Default() (*Catalog, error) {
	return Parse(defaultCurriculum)
}
