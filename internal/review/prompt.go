package review

import (
	"fmt"
	"strings"
)

// analysisHints lists what the reviewer should check per file extension.
var analysisHints = map[string]string{
	"py":   "PEP8 compliance, type hints, docstrings, snake_case naming, no hardcoded secrets",
	"js":   "ESLint rules, const/let usage, JSDoc comments, camelCase naming, semicolons, no hardcoded secrets",
	"ts":   "TypeScript types on all params/returns, TSDoc, camelCase, access modifiers, no var, no hardcoded secrets",
	"java": "Javadoc on all methods/classes, generics, proper access modifiers, PascalCase classes, camelCase methods, no hardcoded secrets",
	"c":    "Function header comments, const usage, indentation, snake_case, no hardcoded secrets",
	"cpp":  "Doxygen comments, no 'using namespace std', const references, PascalCase classes, no hardcoded secrets",
	"st":   "IEC 61131-3 compliance, variable prefixes (b/i/s/r), indentation inside blocks, comments with (* *), no hardcoded strings",
	"cs":   "XML doc comments, access modifiers, PascalCase, proper namespaces, no hardcoded secrets",
}

const defaultAnalysisHint = "Language best practices, comments, naming conventions, security"

// langNames maps file extensions to language names used in prompts.
var langNames = map[string]string{
	"py":   "Python",
	"js":   "JavaScript",
	"ts":   "TypeScript",
	"java": "Java",
	"c":    "C",
	"cpp":  "C++",
	"st":   "Structured Text (IEC 61131-3)",
	"cs":   "C#",
}

// fixRules lists per-language requirements for a compliant rewrite.
var fixRules = map[string]string{
	"py": `- Add module docstring at top: """Module description."""
- Add type hints: def func(x: float, y: float) -> float:
- Add docstrings to every function, class, __init__
- 4-space indentation, no tabs
- Spaces around operators: x = y * z (not x=y*z)
- Spaces after commas: func(a, b, c)
- 2 blank lines between top-level functions/classes
- 1 blank line between class methods
- snake_case for functions/variables, PascalCase for classes
- Remove hardcoded passwords, read them with os.getenv() instead`,

	"js": `- Use const/let instead of var
- Add JSDoc comments: /** @param {number} x @returns {number} */
- Add semicolons at end of statements
- Spaces around operators and after commas
- Remove hardcoded secrets, use process.env instead
- camelCase for functions/variables, PascalCase for classes
- Consistent braces and indentation (2 spaces)`,

	"ts": `- Add TypeScript types to ALL parameters: (x: number, y: number): number
- Add return types to all functions
- Use const/let instead of var
- Add JSDoc/TSDoc comments to all functions and classes
- PascalCase for class names, camelCase for functions/variables
- Use private/public access modifiers in classes
- Remove hardcoded secrets, use process.env instead
- Add interface definitions where appropriate
- Semicolons at end of statements`,

	"java": `- Add Javadoc to every class and method: /** description @param @return */
- Use proper access modifiers (private fields, public methods)
- Use generics: ArrayList<Integer> not raw ArrayList
- PascalCase for classes, camelCase for methods/variables
- Remove hardcoded passwords, use environment config
- Add proper spacing around operators and after commas`,

	"c": `- Add file header comment block
- Add function documentation comments
- Add header guards if needed
- Consistent indentation (4 spaces)
- Spaces around operators and after commas
- Remove hardcoded passwords, use config constants
- Use const for constant values
- snake_case for all identifiers`,

	"cpp": `- Remove 'using namespace std;' and use the std:: prefix instead
- Add Doxygen comments to class and all methods
- Add proper access modifiers
- Spaces around operators and after commas
- Use const references where appropriate
- Remove hardcoded passwords, use config constants
- PascalCase for classes, camelCase for methods`,

	"st": `- Add comment blocks using (* ... *) syntax, NOT docstrings
- Use proper IEC 61131-3 naming: prefix variables (b for BOOL, i for INT, s for STRING)
- Add indentation inside IF/FOR/WHILE blocks (3 spaces)
- Remove hardcoded passwords from the VAR section
- Add descriptive comments before each section
- Use UPPERCASE for keywords: IF, THEN, END_IF, FOR, DO, END_FOR
- Variable declarations should have inline comments`,
}

const defaultFixRules = "- Follow language best practices and add documentation"

func langName(ext string) string {
	if name, ok := langNames[ext]; ok {
		return name
	}
	return strings.ToUpper(ext)
}

func analysisHint(ext string) string {
	if hint, ok := analysisHints[ext]; ok {
		return hint
	}
	return defaultAnalysisHint
}

func fixRulesFor(ext string) string {
	if r, ok := fixRules[ext]; ok {
		return r
	}
	return defaultFixRules
}

// AnalyzeSystemPrompt builds the reviewer system prompt, embedding the
// rendered rule section and per-language checks.
func AnalyzeSystemPrompt(rulesSection, fileExt string) string {
	upper := strings.ToUpper(fileExt)
	return fmt.Sprintf(`You are a STRICT professional code reviewer.

%s

CRITICAL ANALYSIS INSTRUCTIONS:
1. This is %s code, apply %s-specific standards
2. Check: %s
3. Find EVERY violation and be thorough and strict
4. Classify severity:
   - critical: Security risks (hardcoded passwords/keys), crashes, data corruption
   - error: Missing docs/comments, naming violations, missing types, bugs
   - warning: Style issues, potential improvements
   - info: Suggestions, optimizations

Return ONLY a JSON array. No explanation. No markdown.
Format: [{"rule": "RULE-ID", "message": "description", "line": 1, "severity": "error", "fix": "how to fix", "category": "naming"}]
If truly no issues: []`, rulesSection, upper, upper, analysisHint(fileExt))
}

// AnalyzeUserPrompt wraps the submitted code for the analyze call.
func AnalyzeUserPrompt(code, fileExt string) string {
	upper := strings.ToUpper(fileExt)
	return fmt.Sprintf("Analyze this %s code with MAXIMUM STRICTNESS:\n\n```%s\n%s\n```\n\n"+
		"Check for ALL of these in %s code:\n"+
		"1. Missing comments/docstrings on functions and classes\n"+
		"2. Spacing problems (no spaces around operators, after commas)\n"+
		"3. Indentation issues\n"+
		"4. Naming convention violations\n"+
		"5. Security issues (hardcoded passwords, secrets, API keys)\n"+
		"6. Missing type annotations/hints\n"+
		"7. Any other %s best practice violations\n\n"+
		"Return ONLY a JSON array (absolutely no other text):\n"+
		`[{"rule": "DOC-001", "message": "Missing docstring on function calculateTotal", "line": 1, "severity": "error", "fix": "Add function documentation", "category": "documentation"}]`,
		upper, fileExt, code, upper, upper)
}

// FixSystemPrompt builds the system prompt for a compliant rewrite.
func FixSystemPrompt(fileExt string) string {
	name := langName(fileExt)
	return fmt.Sprintf(`You are an EXPERT %s code fixer.
Your goal is to produce PERFECT %s code that scores 100/100.

ABSOLUTE RULES:
1. Output ONLY valid %s code, NO other language
2. NO markdown, NO backticks, NO explanations, raw %s code only
3. Keep ALL original function names, class names, variable names, and logic
4. Fix ALL quality issues to achieve a 100/100 score

FOR %s SPECIFICALLY FIX:
%s`, name, name, name, name, strings.ToUpper(name), fixRulesFor(fileExt))
}

// FixUserPrompt assembles the rewrite request: the original code, the issues
// to address, and any stored rules the issues reference.
func FixUserPrompt(code, errText string, issues []Issue, relevantRules, fileExt string) string {
	name := langName(fileExt)

	var issueLines strings.Builder
	if len(issues) > 0 {
		for _, i := range issues {
			fmt.Fprintf(&issueLines, "- Line %d: %s -> %s\n", i.Line, i.Message, i.Fix)
		}
	} else {
		issueLines.WriteString(errText)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Transform this %s code into PERFECT, fully compliant code.\n\n", name)
	if relevantRules != "" {
		fmt.Fprintf(&b, "RELEVANT CODING STANDARDS:\n%s\n", relevantRules)
	}
	fmt.Fprintf(&b, "ORIGINAL %s CODE:\n%s\n\n", strings.ToUpper(name), code)
	fmt.Fprintf(&b, "ISSUES TO FIX:\n%s\n\n", issueLines.String())
	fmt.Fprintf(&b, "CRITICAL: Return ONLY raw %s code. No backticks. No markdown. No explanations.\n", name)
	fmt.Fprintf(&b, "The output must be directly saveable as a .%s file.", fileExt)
	return b.String()
}

// ChatSystemPrompt is the system prompt for the review assistant chat.
func ChatSystemPrompt() string {
	return `You are a helpful code review assistant.

IMPORTANT: When users ask "can you fix it?" or similar:
1. Show SPECIFIC code changes with BEFORE/AFTER examples
2. Give LINE-BY-LINE fixes
3. Be concise but complete
4. Use markdown code blocks

Example response format:
**Fix for Line 1:**
` + "```python" + `
# Before:
def calc(x,y):

# After:
def calc(x: float, y: float) -> float:
    '''Calculate result of x * y'''
` + "```" + `

Be helpful, specific, and actionable!`
}

// ChatUserPrompt joins the review context with the user's question.
func ChatUserPrompt(chatContext, message string) string {
	return fmt.Sprintf("%s\n\nUser Question: %s\n\nProvide SPECIFIC fixes with code examples.", chatContext, message)
}
