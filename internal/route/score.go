package route

// Score computes the hop's scored gain from its raw load gain and the
// destination station's distance from its parent star: score = gainCr *
// (1 - penalty). The penalty follows lsFromStar in discrete 100-ls
// bands (kls) via a quadratic curve, scaled by lsPenaltyPercent: it is
// negative below 1 kls (lowest at 0.5 kls, where the score rises above
// gainCr), zero at exactly 1 kls, and grows quadratically beyond.
//
// kls = floor(lsFromStar / 100) / 10
// penalty = lsPenaltyPercent/100 * (kls^2 - kls) / 3
//
// The result is not clamped: once the penalty exceeds 1 the score is
// negative, and Expand still keeps such a hop when no other route reaches
// that destination.
func Score(gainCr int64, lsFromStar int64, lsPenaltyPercent float64) int64 {
	if lsPenaltyPercent <= 0 || lsFromStar <= 0 {
		return gainCr
	}
	kls := float64(lsFromStar/100) / 10
	lsPenalty := lsPenaltyPercent / 100
	penalty := lsPenalty * ((kls*kls - kls) / 3)
	return int64(float64(gainCr) * (1 - penalty))
}
