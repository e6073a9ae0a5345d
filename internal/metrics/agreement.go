package metrics

// Agreement reports how well the automated diagnoser matches an
// instructor-labeled subset of attempts.
type Agreement struct {
	Labeled int

	// Observed is the raw agreement fraction.
	Observed float64

	// Expected is the chance agreement implied by the two marginal
	// label distributions.
	Expected float64

	// Kappa is the chance-corrected agreement (observed - expected) /
	// (1 - expected), in [-1,1].
	Kappa float64
}

// DiagnosticAgreement computes Cohen's kappa between the system's
// primary tag and the instructor's label over the labeled subset.
func DiagnosticAgreement(labeled []LabeledAttempt) Agreement {
	n := len(labeled)
	if n == 0 {
		return Agreement{}
	}

	agree := 0
	sysCounts := make(map[string]int)
	insCounts := make(map[string]int)
	for _, l := range labeled {
		if l.SystemTag == l.InstructorTag {
			agree++
		}
		sysCounts[l.SystemTag]++
		insCounts[l.InstructorTag]++
	}

	po := float64(agree) / float64(n)

	var pe float64
	for tag, sc := range sysCounts {
		pe += (float64(sc) / float64(n)) * (float64(insCounts[tag]) / float64(n))
	}

	a := Agreement{Labeled: n, Observed: po, Expected: pe}
	if pe >= 1 {
		// Both raters used a single identical label; agreement is
		// perfect but chance-correction is undefined.
		if po >= 1 {
			a.Kappa = 1
		}
		return a
	}
	a.Kappa = clampUnit((po - pe) / (1 - pe))
	return a
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
