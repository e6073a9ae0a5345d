package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/codetutor/internal/content"
	"github.com/abhisek/codetutor/internal/engine"
	"github.com/abhisek/codetutor/internal/orchestrator"
)

var learnCmd = &cobra.Command{
	Use:   "learn <username>",
	Short: "Start an interactive learning session",
	Long: `Run the adaptive loop for a student: lessons, questions, and
targeted remediation until the concept graph is complete.

Type your answer at the prompt. For coding questions, finish your code
with a single "." on its own line. Type "quit" to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runLearn,
}

func runLearn(cmd *cobra.Command, args []string) error {
	eng, st, err := openEngine(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	stu, err := resolveStudent(cmd, st, args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("Welcome back, %s!\n\n", stu.Username)

	for {
		p, err := eng.Next(ctx, stu.ID)
		if err != nil {
			return err
		}

		switch p.Decision.Action {
		case orchestrator.ActionComplete:
			fmt.Println("All concepts completed. Great work!")
			return nil

		case orchestrator.ActionAdvance:
			if p.Decision.Struggling {
				fmt.Printf("Moving on to %q for now; we'll revisit this later with your instructor.\n\n", p.Decision.Concept)
			} else {
				fmt.Printf("Concept mastered! Moving on to %q.\n\n", p.Decision.Concept)
			}
			continue

		case orchestrator.ActionTeach, orchestrator.ActionReteach:
			printLesson(p.Lesson)
			if p.Question == nil {
				continue
			}
		}

		printQuestion(p.Question)
		answer, ok := readAnswer(scanner, p.Question.Kind)
		if !ok {
			fmt.Println("Session ended. See you next time!")
			return nil
		}

		res, err := eng.Submit(ctx, stu.ID, p.Question.ID, answer)
		if err != nil {
			var verr *engine.ValidationError
			if errors.As(err, &verr) {
				fmt.Printf("%s\n\n", verr.Reason)
				continue
			}
			return err
		}

		fmt.Println(res.Feedback)
		fmt.Println()
	}
}

func printLesson(l *content.LessonPayload) {
	if l == nil {
		return
	}
	fmt.Printf("── %s ──\n", l.Title)
	for _, b := range l.Bullets {
		fmt.Printf("  • %s\n", b)
	}
	if l.WorkedExample != "" {
		fmt.Println()
		fmt.Println(l.WorkedExample)
	}
	fmt.Println()
}

func printQuestion(q *content.QuestionPayload) {
	fmt.Println(q.Prompt)
	if q.Kind == content.KindMCQ {
		keys := make([]string, 0, len(q.Options))
		for k := range q.Options {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s) %s\n", k, q.Options[k])
		}
	}
}

// readAnswer reads one response: a single line for MCQs, lines until a
// lone "." for code. Returns false when the session should end.
func readAnswer(scanner *bufio.Scanner, kind content.QuestionKind) (string, bool) {
	if kind == content.KindCoding {
		fmt.Print("\nYour code (end with \".\"):\n")
		var lines []string
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "." {
				return strings.Join(lines, "\n"), true
			}
			if strings.TrimSpace(line) == "quit" && len(lines) == 0 {
				return "", false
			}
			lines = append(lines, line)
		}
		return "", false
	}

	fmt.Print("\nYour answer: ")
	if !scanner.Scan() {
		fmt.Println("\n(input closed)")
		return "", false
	}
	answer := strings.TrimSpace(scanner.Text())
	if strings.EqualFold(answer, "quit") {
		return "", false
	}
	return answer, true
}
