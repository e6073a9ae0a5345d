package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrePostEffect_KnownValues(t *testing.T) {
	pre := map[string]float64{"s1": 0.4, "s2": 0.5, "s3": 0.6}
	post := map[string]float64{"s1": 0.7, "s2": 0.8, "s3": 0.9}

	es := PrePostEffect(pre, post)
	assert.Equal(t, 3, es.Pairs)
	assert.InDelta(t, 0.5, es.PreMean, 1e-9)
	assert.InDelta(t, 0.8, es.PostMean, 1e-9)
	assert.InDelta(t, 0.3, es.Improvement, 1e-9)

	// Squared deviations sum to 0.04 over 4 degrees of freedom: the
	// pooled standard deviation is 0.1, so d = 0.3 / 0.1.
	assert.InDelta(t, 3.0, es.CohensD, 1e-9)
	assert.Equal(t, "large", es.Interpretation)
}

func TestPrePostEffect_UnpairedStudentsExcluded(t *testing.T) {
	pre := map[string]float64{"s1": 0.2, "s2": 0.4, "dropout": 0.1}
	post := map[string]float64{"s1": 0.6, "s2": 0.8, "joiner": 0.9}

	es := PrePostEffect(pre, post)
	assert.Equal(t, 2, es.Pairs)
	assert.InDelta(t, 0.3, es.PreMean, 1e-9)
	assert.InDelta(t, 0.7, es.PostMean, 1e-9)
}

func TestPrePostEffect_ZeroVariance(t *testing.T) {
	pre := map[string]float64{"s1": 0.5, "s2": 0.5}
	post := map[string]float64{"s1": 0.5, "s2": 0.5}

	es := PrePostEffect(pre, post)
	assert.Zero(t, es.Improvement)
	assert.Zero(t, es.CohensD)
	assert.Equal(t, "negligible", es.Interpretation)
}

func TestPrePostEffect_Empty(t *testing.T) {
	es := PrePostEffect(nil, nil)
	assert.Zero(t, es.Pairs)
	assert.Equal(t, "negligible", es.Interpretation)
}

func TestInterpretEffect_Bands(t *testing.T) {
	cases := []struct {
		d    float64
		want string
	}{
		{0.0, "negligible"},
		{0.19, "negligible"},
		{0.2, "small"},
		{0.49, "small"},
		{0.5, "medium"},
		{0.79, "medium"},
		{0.8, "large"},
		{-0.9, "large"},
		{-0.3, "small"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, interpretEffect(c.d), "d=%v", c.d)
	}
}
