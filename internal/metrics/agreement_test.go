package metrics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func labeled(pairs ...[2]string) []LabeledAttempt {
	out := make([]LabeledAttempt, len(pairs))
	for i, p := range pairs {
		out[i] = LabeledAttempt{
			AttemptID:     fmt.Sprintf("a%d", i),
			SystemTag:     p[0],
			InstructorTag: p[1],
		}
	}
	return out
}

func TestDiagnosticAgreement_Perfect(t *testing.T) {
	a := DiagnosticAgreement(labeled(
		[2]string{"off_by_one", "off_by_one"},
		[2]string{"infinite_loop", "infinite_loop"},
		[2]string{"off_by_one", "off_by_one"},
	))
	assert.InDelta(t, 1.0, a.Observed, 1e-9)
	assert.InDelta(t, 1.0, a.Kappa, 1e-9)
}

func TestDiagnosticAgreement_ChanceLevel(t *testing.T) {
	// Both raters use each label half the time, agreeing exactly as
	// often as chance predicts: kappa is zero.
	a := DiagnosticAgreement(labeled(
		[2]string{"off_by_one", "off_by_one"},
		[2]string{"off_by_one", "infinite_loop"},
		[2]string{"infinite_loop", "off_by_one"},
		[2]string{"infinite_loop", "infinite_loop"},
	))
	assert.InDelta(t, 0.5, a.Observed, 1e-9)
	assert.InDelta(t, 0.5, a.Expected, 1e-9)
	assert.InDelta(t, 0.0, a.Kappa, 1e-9)
}

func TestDiagnosticAgreement_WorseThanChance(t *testing.T) {
	a := DiagnosticAgreement(labeled(
		[2]string{"off_by_one", "infinite_loop"},
		[2]string{"infinite_loop", "off_by_one"},
	))
	assert.Zero(t, a.Observed)
	assert.InDelta(t, -1.0, a.Kappa, 1e-9)
	assert.GreaterOrEqual(t, a.Kappa, -1.0)
}

func TestDiagnosticAgreement_SingleIdenticalLabel(t *testing.T) {
	// Degenerate marginals: expected agreement is 1, so the
	// chance-corrected form is undefined. Perfect agreement wins.
	a := DiagnosticAgreement(labeled(
		[2]string{"off_by_one", "off_by_one"},
		[2]string{"off_by_one", "off_by_one"},
	))
	assert.InDelta(t, 1.0, a.Kappa, 1e-9)
}

func TestDiagnosticAgreement_Empty(t *testing.T) {
	a := DiagnosticAgreement(nil)
	assert.Zero(t, a.Labeled)
	assert.Zero(t, a.Kappa)
}

func TestDiagnosticAgreement_Bounds(t *testing.T) {
	tags := []string{"off_by_one", "infinite_loop", "return_vs_print", "unclassified"}
	var pairs [][2]string
	for i := 0; i < 40; i++ {
		pairs = append(pairs, [2]string{tags[i%4], tags[(i*3)%4]})
	}

	a := DiagnosticAgreement(labeled(pairs...))
	assert.GreaterOrEqual(t, a.Kappa, -1.0)
	assert.LessOrEqual(t, a.Kappa, 1.0)
	assert.GreaterOrEqual(t, a.Observed, 0.0)
	assert.LessOrEqual(t, a.Observed, 1.0)
}
