package misconception

// seedMisconceptions defines the fixed misconception taxonomy:
// 18 misconceptions across the introductory programming curriculum.
var seedMisconceptions = []Misconception{
	{
		ID:              "off_by_one",
		Label:           "Off-by-One Error",
		Description:     "Loop or index boundary is one more or less than intended",
		Concepts:        []string{"loops", "arrays", "strings"},
		Severity:        SeverityHigh,
		RemediationHint: "Trace range() bounds by hand: range(n) stops at n-1, and the last valid index is len(list)-1",
	},
	{
		ID:              "assignment_vs_equality",
		Label:           "Assignment vs Equality Confusion",
		Description:     "Using = when == is intended, or vice versa",
		Concepts:        []string{"variables", "operators", "conditionals"},
		Severity:        SeverityHigh,
		RemediationHint: "Contrast x = 5 (assigns) with x == 5 (compares) in several side-by-side examples",
	},
	{
		ID:              "wrong_loop_condition",
		Label:           "Wrong Loop Condition",
		Description:     "Loop termination condition is incorrect",
		Concepts:        []string{"loops"},
		Severity:        SeverityMedium,
		RemediationHint: "Trace the loop variable at each iteration and check the exit condition explicitly",
	},
	{
		ID:              "parameter_misuse",
		Label:           "Parameter Misuse",
		Description:     "Incorrect use of function parameters",
		Concepts:        []string{"functions"},
		Severity:        SeverityMedium,
		RemediationHint: "Label each argument with the parameter it binds to when calling the function",
	},
	{
		ID:              "array_indexing_error",
		Label:           "Array Indexing Error",
		Description:     "Accessing array with incorrect index",
		Concepts:        []string{"arrays"},
		Severity:        SeverityHigh,
		RemediationHint: "Practice indexing puzzles: first element is list[0], last is list[len(list)-1]",
	},
	{
		ID:              "integer_division_confusion",
		Label:           "Integer Division Confusion",
		Description:     "Expecting float result from integer division",
		Concepts:        []string{"types", "operators"},
		Severity:        SeverityMedium,
		RemediationHint: "Compare / and // on the same operands and inspect the result types",
	},
	{
		ID:              "return_vs_print",
		Label:           "Return vs Print Confusion",
		Description:     "Using print when return is needed or vice versa",
		Concepts:        []string{"functions"},
		Severity:        SeverityHigh,
		RemediationHint: "Trace function output: return hands a value back, print only displays it",
	},
	{
		ID:              "scope_confusion",
		Label:           "Variable Scope Confusion",
		Description:     "Misunderstanding variable scope rules",
		Concepts:        []string{"functions", "variables"},
		Severity:        SeverityMedium,
		RemediationHint: "Diagram which names are visible inside and outside the function body",
	},
	{
		ID:              "infinite_loop",
		Label:           "Infinite Loop",
		Description:     "Loop that never terminates",
		Concepts:        []string{"loops"},
		Severity:        SeverityHigh,
		RemediationHint: "Identify the loop variable update; a while loop must make progress toward its exit condition",
	},
	{
		ID:              "type_coercion_error",
		Label:           "Type Coercion Error",
		Description:     "Incorrect assumptions about type conversion",
		Concepts:        []string{"types"},
		Severity:        SeverityMedium,
		RemediationHint: "Check value types before combining them; convert explicitly with int(), str(), float()",
	},
	{
		ID:              "operator_precedence_error",
		Label:           "Operator Precedence Error",
		Description:     "Incorrect order of operations",
		Concepts:        []string{"operators"},
		Severity:        SeverityLow,
		RemediationHint: "Add parentheses to make the intended evaluation order explicit",
	},
	{
		ID:              "wrong_condition_logic",
		Label:           "Wrong Condition Logic",
		Description:     "Boolean logic error in conditions",
		Concepts:        []string{"conditionals"},
		Severity:        SeverityMedium,
		RemediationHint: "Build a truth table for the condition and compare against the intended behavior",
	},
	{
		ID:              "missing_else_case",
		Label:           "Missing Else Case",
		Description:     "Not handling all possible conditions",
		Concepts:        []string{"conditionals"},
		Severity:        SeverityLow,
		RemediationHint: "Enumerate the input space and confirm every case reaches a branch",
	},
	{
		ID:              "string_immutability",
		Label:           "String Immutability",
		Description:     "Trying to modify string in place",
		Concepts:        []string{"strings"},
		Severity:        SeverityMedium,
		RemediationHint: "Show that s[0] = 'x' fails; build a new string instead of mutating",
	},
	{
		ID:              "escape_character_error",
		Label:           "Escape Character Error",
		Description:     "Incorrect use of escape characters",
		Concepts:        []string{"strings"},
		Severity:        SeverityLow,
		RemediationHint: "Review backslash escapes with printed output next to the source literal",
	},
	{
		ID:              "empty_array_access",
		Label:           "Empty Array Access",
		Description:     "Accessing elements of empty array",
		Concepts:        []string{"arrays"},
		Severity:        SeverityHigh,
		RemediationHint: "Guard element access with a length check before indexing",
	},
	{
		ID:              "complexity_analysis_error",
		Label:           "Complexity Analysis Error",
		Description:     "Incorrect Big-O analysis",
		Concepts:        []string{"complexity"},
		Severity:        SeverityMedium,
		RemediationHint: "Count iterations as a function of input size rather than guessing from code shape",
	},
	{
		ID:              "nested_loop_complexity",
		Label:           "Nested Loop Complexity",
		Description:     "Misunderstanding complexity of nested loops",
		Concepts:        []string{"complexity", "loops"},
		Severity:        SeverityMedium,
		RemediationHint: "Multiply the iteration counts of nested loops to derive the combined bound",
	},
}
