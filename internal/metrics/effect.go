package metrics

import (
	"math"
	"sort"
)

// EffectSize summarizes the pre/post learning gain of a cohort.
type EffectSize struct {
	// Pairs is the number of students with both a pre and a post score.
	Pairs int

	PreMean  float64
	PostMean float64

	// Improvement is mean(post) - mean(pre).
	Improvement float64

	// CohensD is the improvement divided by the pooled standard
	// deviation with unbiased (n1-1), (n2-1) weighting. Zero when the
	// pooled variance vanishes.
	CohensD float64

	// Interpretation is the conventional band: negligible, small,
	// medium, or large.
	Interpretation string
}

// PrePostEffect pairs students across the two score maps and computes
// the cohort effect size. Students missing either score are skipped.
func PrePostEffect(pre, post map[string]float64) EffectSize {
	ids := make([]string, 0, len(pre))
	for id := range pre {
		if _, ok := post[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	if len(ids) == 0 {
		return EffectSize{Interpretation: "negligible"}
	}

	preScores := make([]float64, len(ids))
	postScores := make([]float64, len(ids))
	for i, id := range ids {
		preScores[i] = pre[id]
		postScores[i] = post[id]
	}

	preMean := mean(preScores)
	postMean := mean(postScores)

	es := EffectSize{
		Pairs:       len(ids),
		PreMean:     preMean,
		PostMean:    postMean,
		Improvement: postMean - preMean,
	}
	es.CohensD = cohensD(preScores, postScores, preMean, postMean)
	es.Interpretation = interpretEffect(es.CohensD)
	return es
}

// cohensD divides the mean difference by the pooled standard
// deviation. The pooled variance sums squared deviations of both
// groups over n1+n2-2.
func cohensD(pre, post []float64, preMean, postMean float64) float64 {
	n1, n2 := len(pre), len(post)
	if n1+n2 <= 2 {
		return 0
	}

	var ss float64
	for _, x := range pre {
		ss += (x - preMean) * (x - preMean)
	}
	for _, x := range post {
		ss += (x - postMean) * (x - postMean)
	}

	pooled := math.Sqrt(ss / float64(n1+n2-2))
	if pooled == 0 {
		return 0
	}
	return (postMean - preMean) / pooled
}

func interpretEffect(d float64) string {
	switch abs := math.Abs(d); {
	case abs < 0.2:
		return "negligible"
	case abs < 0.5:
		return "small"
	case abs < 0.8:
		return "medium"
	default:
		return "large"
	}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
