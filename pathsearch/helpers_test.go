package pathsearch

import "github.com/katalvlaran/orderpath/search"

func searchGuards() search.GuardLimits {
	return search.GuardLimits{MaxExpansions: 1000, MaxVisitedStates: 1000}
}

func guardsWithExpansionLimit(maxExpansions int) search.GuardLimits {
	return search.GuardLimits{MaxExpansions: maxExpansions, MaxVisitedStates: 1000}
}
