package plan

import (
	"sort"

	"tripdeck/internal/model"
)

// Suggest greedily fills a day from the available pool. The caller filters
// the pool to the day's city and to activities not already scheduled.
//
// Two phases: first the anchor — only the first anchor in input order is
// considered, and included only if it fits the budget. Then fillers — the
// non-anchor activities sorted ascending by duration (stable, so ties keep
// input order) and taken in a single greedy pass; anything skipped is not
// reconsidered. The result never exceeds the budget. This is a deliberate
// cheap heuristic, not a knapsack solve.
func Suggest(available []model.Activity, budget float64) []model.Activity {
	var picked []model.Activity
	var total float64

	for _, a := range available {
		if a.Category != model.CategoryAnchor {
			continue
		}
		if total+a.EstimatedDurationHours <= budget {
			picked = append(picked, a)
			total += a.EstimatedDurationHours
		}
		break
	}

	fillers := make([]model.Activity, 0, len(available))
	for _, a := range available {
		if a.Category != model.CategoryAnchor {
			fillers = append(fillers, a)
		}
	}
	sort.SliceStable(fillers, func(i, j int) bool {
		return fillers[i].EstimatedDurationHours < fillers[j].EstimatedDurationHours
	})

	for _, a := range fillers {
		if total+a.EstimatedDurationHours <= budget {
			picked = append(picked, a)
			total += a.EstimatedDurationHours
		}
	}

	return picked
}
