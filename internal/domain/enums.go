package domain

// CourseCategory tags a course with its curricular role. The values are the
// registrar's own strings so the catalog artifact matches official documents.
type CourseCategory string

const (
	// CategoryMajorFoundation is the mandatory-foundation tag: always
	// recommended once its term arrives and it is incomplete, never filtered.
	CategoryMajorFoundation CourseCategory = "전공기초(필수)"
	CategoryMajorCore       CourseCategory = "전공핵심"
	CategoryMajorAdvanced   CourseCategory = "전공심화"
	CategoryGeneralRequired CourseCategory = "교양필수"
)

// ValidCategories is the closed set of accepted category strings.
var ValidCategories = map[CourseCategory]bool{
	CategoryMajorFoundation: true,
	CategoryMajorCore:       true,
	CategoryMajorAdvanced:   true,
	CategoryGeneralRequired: true,
}

// InterestArea is a ranked tag a student selects to steer elective scoring.
type InterestArea string

const (
	AreaProcess   InterestArea = "공정 (생산, 품질)"
	AreaLogistics InterestArea = "물류/SCM"
	AreaData      InterestArea = "데이터"
	AreaFinance   InterestArea = "금융"
)

// KnownInterestAreas lists the selectable areas in display order. Unknown
// tags on a profile are not rejected; they simply weigh zero everywhere.
var KnownInterestAreas = []InterestArea{AreaProcess, AreaLogistics, AreaData, AreaFinance}

// StrategyName selects the scoring strategy at catalog-load time.
type StrategyName string

const (
	StrategyWeighted StrategyName = "weighted"
	StrategyRoadmap  StrategyName = "roadmap"
)
