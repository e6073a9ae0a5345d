package content

import (
	"fmt"

	"github.com/google/uuid"
)

// SeedBank serves pre-authored templates when synthesis fails.
// Lookups are deterministic: the same concept always yields the same
// template content.
type SeedBank struct{}

// NewSeedBank creates the seed bank.
func NewSeedBank() *SeedBank {
	return &SeedBank{}
}

// Lesson returns the fallback lesson for a concept. Concepts without a
// dedicated template get a generic lesson naming the concept.
func (b *SeedBank) Lesson(input SynthesisInput) *LessonPayload {
	l, ok := seedLessons[input.ConceptID]
	if !ok {
		l = genericLesson(input.ConceptID, input.ConceptName)
	}
	out := l
	out.TargetMisconceptions = input.TargetMisconceptions
	out.Fallback = true
	return &out
}

// Question returns the fallback question for a concept and kind.
func (b *SeedBank) Question(input SynthesisInput) *QuestionPayload {
	var q QuestionPayload
	var ok bool
	if input.Kind == KindCoding {
		q, ok = seedCoding[input.ConceptID]
		if !ok {
			q = genericCoding(input.ConceptID, input.ConceptName)
		}
	} else {
		q, ok = seedMCQs[input.ConceptID]
		if !ok {
			q = genericMCQ(input.ConceptID, input.ConceptName)
		}
	}
	q.ID = uuid.NewString()
	q.Difficulty = input.Difficulty
	q.TargetMisconceptions = input.TargetMisconceptions
	q.Fallback = true
	return &q
}

func genericLesson(conceptID, name string) LessonPayload {
	if name == "" {
		name = conceptID
	}
	return LessonPayload{
		ConceptID: conceptID,
		Title:     fmt.Sprintf("Introduction to %s", name),
		Bullets: []string{
			fmt.Sprintf("This lesson covers %s", name),
			"Work through the example line by line",
			"Predict the output before running anything",
			"Try the quick check below",
		},
		WorkedExample: fmt.Sprintf("# Example for %s\n# Trace each line and note what changes", name),
		Pitfall:       fmt.Sprintf("A common mistake with %s is skipping the simple cases", name),
		QuickCheck:    fmt.Sprintf("Can you explain %s in your own words?", name),
	}
}

func genericMCQ(conceptID, name string) QuestionPayload {
	if name == "" {
		name = conceptID
	}
	return QuestionPayload{
		ConceptID:  conceptID,
		Kind:       KindMCQ,
		Prompt:     fmt.Sprintf("Which statement about %s is TRUE?", name),
		Options: map[string]string{
			"A": fmt.Sprintf("%s is always required in every program", name),
			"B": fmt.Sprintf("%s helps organize and structure code", name),
			"C": fmt.Sprintf("%s is only useful for advanced users", name),
			"D": fmt.Sprintf("%s cannot be combined with other features", name),
		},
		CorrectKey:           "B",
		OptionMisconceptions: map[string]string{},
		Explanation:          fmt.Sprintf("%s is a fundamental concept that improves code organization.", name),
	}
}

func genericCoding(conceptID, name string) QuestionPayload {
	if name == "" {
		name = conceptID
	}
	return QuestionPayload{
		ConceptID:   conceptID,
		Kind:        KindCoding,
		Prompt:      fmt.Sprintf("Write a function solve(x) that returns its argument unchanged. Use it to practice the basics of %s.", name),
		StarterCode: "def solve(x):\n    # Your code here\n    pass",
		Solution:    "def solve(x):\n    return x",
		TestCases: []TestCase{
			{Input: "5", Expected: "5"},
			{Input: "'hello'", Expected: "'hello'"},
		},
		Explanation: "The function returns its input directly with a return statement.",
	}
}

var seedLessons = map[string]LessonPayload{
	"variables": {
		ConceptID: "variables",
		Title:     "Variables and Assignment",
		Bullets: []string{
			"Variables store data values for later use",
			"Use descriptive names like 'user_age' not 'x'",
			"The = operator assigns the value on the right to the name on the left",
			"Variables can be reassigned at any time",
		},
		WorkedExample: "# Creating and using variables\nname = \"Alice\"      # String variable\nage = 25            # Integer variable\n\n# Reassigning\nage = age + 1       # Now age is 26\nprint(f\"{name} is {age}\")",
		Pitfall:       "Don't confuse = (assignment) with == (comparison). x = 5 assigns, x == 5 compares.",
		QuickCheck:    "After running: x = 10; x = x + 5, what is x?",
	},
	"loops": {
		ConceptID: "loops",
		Title:     "For and While Loops",
		Bullets: []string{
			"for loops iterate over sequences (range, lists, strings)",
			"range(n) gives 0 to n-1, not 1 to n",
			"while loops continue until their condition becomes False",
			"Use break to exit early, continue to skip an iteration",
		},
		WorkedExample: "# For loop with range\nfor i in range(3):    # i = 0, 1, 2\n    print(i)\n\n# While loop\ncount = 0\nwhile count < 3:\n    print(count)\n    count += 1        # Don't forget to update!",
		Pitfall:       "range(3) produces 0, 1, 2, not 1, 2, 3. Off-by-one errors are very common!",
		QuickCheck:    "How many times will this print? for i in range(5): print(i)",
	},
	"arrays": {
		ConceptID: "arrays",
		Title:     "Lists and Indexing",
		Bullets: []string{
			"Lists store ordered collections of items",
			"Indexing starts at 0: the first element is list[0]",
			"Negative indices count from the end: list[-1] is last",
			"len(list) gives the number of elements",
		},
		WorkedExample: "# Creating and accessing lists\nfruits = [\"apple\", \"banana\", \"cherry\"]\nfirst = fruits[0]     # \"apple\"\nlast = fruits[-1]     # \"cherry\"\ncount = len(fruits)   # 3\n\n# Modifying\nfruits.append(\"date\")\nfruits[0] = \"apricot\"",
		Pitfall:       "The last valid index is len(list)-1, not len(list). list[len(list)] raises IndexError!",
		QuickCheck:    "If nums = [10, 20, 30], what is nums[1]?",
	},
	"functions": {
		ConceptID: "functions",
		Title:     "Defining Functions",
		Bullets: []string{
			"Functions are reusable blocks of code",
			"def function_name(parameters): defines a function",
			"return sends a value back to the caller",
			"Parameters receive values when the function is called",
		},
		WorkedExample: "# Defining a function\ndef greet(name):\n    message = \"Hello, \" + name\n    return message    # Returns the value\n\n# Calling the function\nresult = greet(\"World\")\nprint(result)         # \"Hello, World\"",
		Pitfall:       "return vs print: return gives a value back, print just displays. x = print('hi') gives None!",
		QuickCheck:    "What's the difference between: return x and print(x)?",
	},
	"conditionals": {
		ConceptID: "conditionals",
		Title:     "If, Elif, Else",
		Bullets: []string{
			"if checks a condition and runs its block when True",
			"elif adds conditions, checked only if earlier ones were False",
			"else runs when all conditions are False",
			"Only ONE branch executes in an if-elif-else chain",
		},
		WorkedExample: "# Conditional chain\nscore = 85\n\nif score >= 90:\n    grade = \"A\"\nelif score >= 80:\n    grade = \"B\"       # This runs (score is 85)\nelif score >= 70:\n    grade = \"C\"       # Skipped\nelse:\n    grade = \"F\"\n\nprint(grade)          # \"B\"",
		Pitfall:       "Once a condition is True, all following elif/else blocks are skipped, even if they would also be True.",
		QuickCheck:    "If x = 15, what prints? if x > 10: print('A') elif x > 5: print('B')",
	},
}

var seedMCQs = map[string]QuestionPayload{
	"variables": {
		ConceptID: "variables",
		Kind:      KindMCQ,
		Prompt:    "What will be the value of 'result' after this code?\n\nx = 5\ny = x\nx = 10\nresult = y",
		Options: map[string]string{
			"A": "10",
			"B": "5",
			"C": "15",
			"D": "Error",
		},
		CorrectKey: "B",
		OptionMisconceptions: map[string]string{
			"A": "assignment_vs_equality",
		},
		Explanation: "When y = x runs, y gets the VALUE of x (5), not a reference. Changing x later doesn't affect y.",
	},
	"loops": {
		ConceptID: "loops",
		Kind:      KindMCQ,
		Prompt:    "What will be printed?\n\nfor i in range(2, 5):\n    print(i, end=' ')",
		Options: map[string]string{
			"A": "2 3 4 5",
			"B": "2 3 4",
			"C": "1 2 3 4",
			"D": "2 3 4 5 6",
		},
		CorrectKey: "B",
		OptionMisconceptions: map[string]string{
			"A": "off_by_one",
			"C": "off_by_one",
			"D": "wrong_loop_condition",
		},
		Explanation: "range(2, 5) produces 2, 3, 4. The end value (5) is not included.",
	},
	"arrays": {
		ConceptID: "arrays",
		Kind:      KindMCQ,
		Prompt:    "What is the output?\n\narr = [1, 2, 3, 4, 5]\nprint(arr[1:4])",
		Options: map[string]string{
			"A": "[1, 2, 3, 4]",
			"B": "[2, 3, 4]",
			"C": "[2, 3, 4, 5]",
			"D": "[1, 2, 3]",
		},
		CorrectKey: "B",
		OptionMisconceptions: map[string]string{
			"A": "off_by_one",
			"C": "off_by_one",
			"D": "array_indexing_error",
		},
		Explanation: "Slicing arr[1:4] returns elements from index 1 to 3 (index 4 is excluded).",
	},
}

var seedCoding = map[string]QuestionPayload{
	"loops": {
		ConceptID:   "loops",
		Kind:        KindCoding,
		Prompt:      "Write a function count_even(nums) that returns how many numbers in the list are even.",
		StarterCode: "def count_even(nums):\n    # Your code here\n    pass",
		Solution:    "def count_even(nums):\n    count = 0\n    for n in nums:\n        if n % 2 == 0:\n            count += 1\n    return count",
		TestCases: []TestCase{
			{Input: "[1, 2, 3, 4]", Expected: "2"},
			{Input: "[1, 3, 5]", Expected: "0"},
			{Input: "[]", Expected: "0"},
		},
		Explanation: "Loop over every element, test n % 2 == 0, and count the matches.",
	},
	"arrays": {
		ConceptID:   "arrays",
		Kind:        KindCoding,
		Prompt:      "Write a function second_largest(nums) that returns the second largest distinct value in the list. If there is only one distinct value, return it.",
		StarterCode: "def second_largest(nums):\n    # Your code here\n    pass",
		Solution:    "def second_largest(nums):\n    unique = list(set(nums))\n    unique.sort(reverse=True)\n    return unique[1] if len(unique) > 1 else unique[0]",
		TestCases: []TestCase{
			{Input: "[3, 1, 4, 1, 5]", Expected: "4"},
			{Input: "[7, 7]", Expected: "7"},
		},
		Explanation: "Deduplicate first, sort descending, then take the second element when it exists.",
	},
}
