package scoring

// Insight thresholds
const (
	insightHigh = 80.0
	insightMid  = 60.0
)

// insightLadder holds the two insights shown at each tier of one section
type insightLadder struct {
	high, mid, low [2]string
}

var sectionInsights = map[string]insightLadder{
	"psychometric": {
		high: [2]string{
			"Excellent personality fit for case management roles",
			"Strong conscientiousness and organizational skills",
		},
		mid: [2]string{
			"Good personality alignment with some areas for development",
			"Consider building stronger systematic thinking habits",
		},
		low: [2]string{
			"Personality traits may need development for optimal case management success",
			"Focus on building attention to detail and systematic approaches",
		},
	},
	"technical-aptitude": {
		high: [2]string{
			"Strong technical foundation and problem-solving abilities",
			"Ready for advanced case management system training",
		},
		mid: [2]string{
			"Solid technical aptitude with room for growth",
			"Recommend additional technical training before specializing",
		},
		low: [2]string{
			"Technical skills need significant development",
			"Start with fundamental IT and database concepts",
		},
	},
	"domain-expertise": {
		high: [2]string{
			"Excellent understanding of case management principles",
			"Ready for advanced implementation and consulting roles",
		},
		mid: [2]string{
			"Good grasp of case management concepts",
			"Build experience with real-world case management scenarios",
		},
		low: [2]string{
			"Domain knowledge needs development",
			"Start with case management fundamentals and best practices",
		},
	},
}

// SectionInsights returns the two insights for a section score.
// Unknown sections get an empty slice.
func SectionInsights(score float64, sectionID string) []string {
	ladder, ok := sectionInsights[sectionID]
	if !ok {
		return []string{}
	}

	var pair [2]string
	switch {
	case score >= insightHigh:
		pair = ladder.high
	case score >= insightMid:
		pair = ladder.mid
	default:
		pair = ladder.low
	}
	return []string{pair[0], pair[1]}
}
