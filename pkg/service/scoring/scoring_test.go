package scoring_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/dirtlot-lab/dirtlot/pkg/service/scoring"
)

func TestFilthScore(t *testing.T) {
	testCases := map[string]struct {
		year int
		want int
	}{
		"vintage year":      {year: 1967, want: 35},
		"last vintage year": {year: 1999, want: 35},
		"first modern year": {year: 2000, want: 15},
		"modern year":       {year: 2015, want: 15},
		"far vintage year":  {year: 1885, want: 35},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.Value(t, scoring.FilthScore(tc.year)).Equal(tc.want)
		})
	}
}
