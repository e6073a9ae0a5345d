package metrics

import "sort"

// cohortFraction is the classical top/bottom share for the
// discrimination index.
const cohortFraction = 0.27

// minDiscriminationStudents is the smallest number of distinct
// students for which a discrimination index is meaningful.
const minDiscriminationStudents = 4

// ItemStats holds the analysis of one question.
type ItemStats struct {
	QuestionID string
	ConceptID  string
	Attempts   int

	// PValue is the fraction of attempts answered correctly, in [0,1].
	// Higher means easier.
	PValue float64

	// Discrimination is the top-cohort accuracy minus the bottom-cohort
	// accuracy on this item, in [-1,1]. Valid reports whether enough
	// distinct students attempted the item to compute it.
	Discrimination float64
	Valid          bool
}

// AnalyzeItems computes difficulty and discrimination for every
// question in the log. Results are ordered by question ID.
func AnalyzeItems(attempts []Attempt) []ItemStats {
	byQuestion := make(map[string][]Attempt)
	for _, a := range attempts {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a)
	}

	overall := overallScores(attempts)

	out := make([]ItemStats, 0, len(byQuestion))
	for qid, qa := range byQuestion {
		correct := 0
		for _, a := range qa {
			if a.Correct {
				correct++
			}
		}

		stats := ItemStats{
			QuestionID: qid,
			ConceptID:  qa[0].ConceptID,
			Attempts:   len(qa),
			PValue:     float64(correct) / float64(len(qa)),
		}
		stats.Discrimination, stats.Valid = discrimination(qa, overall)
		out = append(out, stats)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out
}

// overallScores returns each student's accuracy across the whole log,
// the ranking key for discrimination cohorts.
func overallScores(attempts []Attempt) map[string]float64 {
	total := make(map[string]int)
	correct := make(map[string]int)
	for _, a := range attempts {
		total[a.StudentID]++
		if a.Correct {
			correct[a.StudentID]++
		}
	}

	out := make(map[string]float64, len(total))
	for id, n := range total {
		out[id] = float64(correct[id]) / float64(n)
	}
	return out
}

// discrimination compares item accuracy of the top and bottom 27%
// cohorts ranked by overall score. Students who attempted the item
// more than once contribute their item accuracy, not raw counts.
func discrimination(itemAttempts []Attempt, overall map[string]float64) (float64, bool) {
	itemTotal := make(map[string]int)
	itemCorrect := make(map[string]int)
	for _, a := range itemAttempts {
		itemTotal[a.StudentID]++
		if a.Correct {
			itemCorrect[a.StudentID]++
		}
	}

	if len(itemTotal) < minDiscriminationStudents {
		return 0, false
	}

	students := make([]string, 0, len(itemTotal))
	for id := range itemTotal {
		students = append(students, id)
	}
	sort.Slice(students, func(i, j int) bool {
		if overall[students[i]] != overall[students[j]] {
			return overall[students[i]] > overall[students[j]]
		}
		return students[i] < students[j]
	})

	cohort := int(float64(len(students)) * cohortFraction)
	if cohort < 1 {
		cohort = 1
	}

	itemAccuracy := func(id string) float64 {
		return float64(itemCorrect[id]) / float64(itemTotal[id])
	}
	cohortAccuracy := func(ids []string) float64 {
		var sum float64
		for _, id := range ids {
			sum += itemAccuracy(id)
		}
		return sum / float64(len(ids))
	}

	top := cohortAccuracy(students[:cohort])
	bottom := cohortAccuracy(students[len(students)-cohort:])
	return top - bottom, true
}
