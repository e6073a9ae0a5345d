package conceptgraph

// seedConcepts defines the introductory programming curriculum:
// 9 concepts from variables through complexity basics.
var seedConcepts = []Concept{
	{
		ID:             "variables",
		Name:           "Variables",
		Description:    "Storing and naming data values",
		Tier:           TierFoundation,
		Prerequisites:  []string{},
		Misconceptions: []string{"assignment_vs_equality", "uninitialized_variable"},
	},
	{
		ID:             "types",
		Name:           "Data Types",
		Description:    "Integer, float, string, boolean types",
		Tier:           TierFoundation,
		Prerequisites:  []string{"variables"},
		Misconceptions: []string{"integer_division_confusion", "type_coercion_error"},
	},
	{
		ID:             "operators",
		Name:           "Operators",
		Description:    "Arithmetic, comparison, and logical operators",
		Tier:           TierCore,
		Prerequisites:  []string{"variables", "types"},
		Misconceptions: []string{"operator_precedence_error", "assignment_vs_equality"},
	},
	{
		ID:             "conditionals",
		Name:           "Conditionals",
		Description:    "If-else statements and boolean logic",
		Tier:           TierCore,
		Prerequisites:  []string{"operators"},
		Misconceptions: []string{"wrong_condition_logic", "missing_else_case"},
	},
	{
		ID:             "loops",
		Name:           "Loops",
		Description:    "For and while loops for repetition",
		Tier:           TierCore,
		Prerequisites:  []string{"conditionals"},
		Misconceptions: []string{"off_by_one", "wrong_loop_condition", "infinite_loop"},
	},
	{
		ID:             "functions",
		Name:           "Functions",
		Description:    "Defining and calling functions",
		Tier:           TierCore,
		Prerequisites:  []string{"variables"},
		Misconceptions: []string{"parameter_misuse", "return_vs_print", "scope_confusion"},
	},
	{
		ID:             "arrays",
		Name:           "Arrays/Lists",
		Description:    "Ordered collections of elements",
		Tier:           TierIntermediate,
		Prerequisites:  []string{"loops", "variables"},
		Misconceptions: []string{"array_indexing_error", "off_by_one", "empty_array_access"},
	},
	{
		ID:             "strings",
		Name:           "Strings",
		Description:    "Text manipulation and operations",
		Tier:           TierIntermediate,
		Prerequisites:  []string{"arrays", "types"},
		Misconceptions: []string{"string_immutability", "off_by_one", "escape_character_error"},
	},
	{
		ID:             "complexity",
		Name:           "Complexity Basics",
		Description:    "Big-O notation fundamentals",
		Tier:           TierIntermediate,
		Prerequisites:  []string{"loops", "arrays"},
		Misconceptions: []string{"complexity_analysis_error", "nested_loop_complexity"},
	},
}

func init() {
	g = buildGraph(seedConcepts)
}
