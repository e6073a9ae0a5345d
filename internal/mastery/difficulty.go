package mastery

// Difficulty is the question difficulty selected for a student.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyFor maps a mastery score to a question difficulty:
// easy below 0.4, medium below 0.7, hard otherwise.
func DifficultyFor(score float64) Difficulty {
	switch {
	case score < 0.4:
		return DifficultyEasy
	case score < 0.7:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}
