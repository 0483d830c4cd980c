package tsp

// diversify perturbs base PerturbTries times and returns the candidate with the
// lowest penalised score
//
//	cost(t) + Penalty(t) · costRange · RepetitionWeight
//
// where Penalty is the normalised edge frequency of t. Each candidate applies
// floor(N · PerturbFraction) swaps at positions drawn from src. Later candidates
// replace earlier ones only on a strictly lower score; base itself never
// competes and is returned only when there are no tries or no swaps.
//
// Complexity: O(tries · (swaps + n)).
func diversify(src RandomSource, model *CostModel, freq *EdgeFrequency, base Tour, p Params) (Tour, int64) {
	var (
		n      = len(base)
		swaps  = int(float64(n) * p.PerturbFraction)
		scale  = float64(model.Range()) * p.RepetitionWeight
		best   = base.Clone()
		cost   = model.TourCost(best)
		score  = float64(cost) + freq.Penalty(best)*scale
		picked bool
	)
	if swaps == 0 {
		return best, cost
	}
	var try, k int
	for try = 0; try < p.PerturbTries; try++ {
		cand := base.Clone()
		for k = 0; k < swaps; k++ {
			a, b := drawIndex(src, n), drawIndex(src, n)
			cand[a], cand[b] = cand[b], cand[a]
		}
		c := model.TourCost(cand)
		sc := float64(c) + freq.Penalty(cand)*scale
		if !picked || sc < score {
			best, cost, score, picked = cand, c, sc, true
		}
	}

	return best, cost
}
