// Package scoring computes the filth score heuristic for car records.
package scoring

const (
	vintageCutoffYear = 2000

	vintageBaseScore = 30
	modernBaseScore  = 10

	scoreOffset = 5
)

// FilthScore maps a model year to its filth score. Cars older than the
// cutoff start from a higher base; a constant offset is added to both.
func FilthScore(year int) int {
	base := modernBaseScore
	if year < vintageCutoffYear {
		base = vintageBaseScore
	}
	return base + scoreOffset
}
