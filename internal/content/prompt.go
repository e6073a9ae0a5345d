package content

import (
	"fmt"
	"strings"
)

const lessonSystemPrompt = `You are an expert programming instructor creating micro-lessons for undergraduate students.

Rules:
- Produce 3-6 short, focused explanation points.
- The worked example must be valid Python with inline comments.
- The pitfall must describe one concrete, common mistake.
- The quick check must be answerable from the lesson alone.
- When misconceptions to address are listed, target them directly instead of giving a generic overview.
- Keep language simple. No jargon without a one-line definition.`

const mcqSystemPrompt = `You are an expert in creating programming assessment questions.

Rules:
- Create one multiple-choice question that tests understanding, not memorization.
- Provide exactly four options keyed A-D with exactly one correct option.
- Each distractor should reflect a specific misconception from the provided list; map it in option_misconceptions.
- Only use misconception tags from the provided list. Leave an option unmapped if no tag fits.
- Code snippets must be valid Python in plain ASCII.
- Do not repeat any question from the "already asked" list.`

const codingSystemPrompt = `You are an expert in creating programming exercises.

Rules:
- Create one coding problem with clear requirements and at least one test case.
- The starter code must be a Python function scaffold (def with a pass body) the student fills in.
- The solution must be valid Python that passes every test case.
- Target the listed misconceptions: the problem should naturally expose students who hold them.
- Difficulty must match the requested level.`

// buildLessonMessage constructs the user message for lesson synthesis.
func buildLessonMessage(input SynthesisInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Concept: %s\n", input.ConceptName)
	fmt.Fprintf(&b, "Student level: %s\n", input.Baseline)

	b.WriteString("Misconceptions to address: ")
	b.WriteString(formatTags(input.TargetMisconceptions))
	b.WriteString("\n")

	return b.String()
}

// buildQuestionMessage constructs the user message for question synthesis.
func buildQuestionMessage(input SynthesisInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Concept: %s\n", input.ConceptName)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)

	b.WriteString("Misconceptions to probe: ")
	b.WriteString(formatTags(input.TargetMisconceptions))
	b.WriteString("\n")

	if len(input.PriorPrompts) > 0 {
		b.WriteString("\nAlready asked:\n")
		for i, p := range input.PriorPrompts {
			fmt.Fprintf(&b, "%d. %s\n", i+1, p)
		}
	}

	return b.String()
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "none specific"
	}
	return strings.Join(tags, ", ")
}
