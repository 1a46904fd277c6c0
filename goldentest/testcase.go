// Package goldentest extracts lowering test fixtures from literate
// Markdown documents: headings named "Test: ..." introduce a case, and the
// fenced code blocks under each heading carry its ast input and its
// instr/error/used assertions.
package goldentest

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// InputType is the language tag of a test case's input fence.
type InputType string

const InputTypeAST InputType = "ast"

// AssertionType is the language tag of an assertion fence.
type AssertionType string

const (
	AssertionTypeInstr AssertionType = "instr"
	AssertionTypeError AssertionType = "error"
	AssertionTypeUsed  AssertionType = "used"
)

// Assertion is a single expectation attached to a TestCase.
type Assertion struct {
	Type    AssertionType
	Content string
}

// TestCase is one lowering fixture extracted from a "## Test: <name>"
// section: the textual AST to lower, the `used` flag to lower it with,
// and either an expected instruction stream or an expected error.
type TestCase struct {
	Name       string
	Input      string // textual AST, in the ast package's S-expression notation
	Used       bool
	Assertions []Assertion
}

// ExtractTestCases walks a Markdown document and collects every "Test: "
// heading's input/assertion fences into a TestCase.
func ExtractTestCases(markdownContent string) ([]TestCase, error) {
	md := goldmark.New()
	source := []byte(markdownContent)
	doc := md.Parser().Parse(text.NewReader(source))

	var testCases []TestCase
	var current *TestCase

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			if n.Level >= 1 && n.Level <= 6 {
				headingText := extractText(n, source)
				if strings.HasPrefix(headingText, "Test: ") {
					if current != nil {
						if err := validateTestCase(current); err != nil {
							return ast.WalkStop, err
						}
						testCases = append(testCases, *current)
					}
					current = &TestCase{
						Name: strings.TrimPrefix(headingText, "Test: "),
						Used: true,
					}
				}
			}

		case *ast.FencedCodeBlock:
			language := string(n.Language(source))
			content := extractCodeBlockContent(n, source)
			lineNum := lineNumber(n, source)

			if current == nil {
				if isInputFence(language) || isAssertionFence(language) {
					return ast.WalkStop, fmt.Errorf("line %d: %s fence found outside of test case", lineNum, language)
				}
				return ast.WalkContinue, nil
			}

			switch {
			case isInputFence(language):
				if current.Input != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple ast fences found in test %q", lineNum, current.Name)
				}
				current.Input = strings.TrimRight(content, "\n")

			case language == string(AssertionTypeUsed):
				used, parseErr := strconv.ParseBool(strings.TrimSpace(content))
				if parseErr != nil {
					return ast.WalkStop, fmt.Errorf("line %d: used fence in test %q must be true or false: %w", lineNum, current.Name, parseErr)
				}
				current.Used = used

			case isAssertionFence(language):
				current.Assertions = append(current.Assertions, Assertion{
					Type:    AssertionType(language),
					Content: strings.TrimRight(content, "\n"),
				})

			case language != "":
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language %q in test %q", lineNum, language, current.Name)
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("goldentest: error walking markdown AST: %w", err)
	}

	if current != nil {
		if err := validateTestCase(current); err != nil {
			return nil, err
		}
		testCases = append(testCases, *current)
	}
	return testCases, nil
}

func extractText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func extractCodeBlockContent(codeBlock *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < codeBlock.Lines().Len(); i++ {
		line := codeBlock.Lines().At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

func isInputFence(language string) bool {
	return language == string(InputTypeAST)
}

func isAssertionFence(language string) bool {
	return language == string(AssertionTypeInstr) || language == string(AssertionTypeError)
}

func validateTestCase(tc *TestCase) error {
	if tc.Input == "" {
		return fmt.Errorf("goldentest: test %q has no ast fence", tc.Name)
	}
	if len(tc.Assertions) == 0 {
		return fmt.Errorf("goldentest: test %q has no instr or error assertion fence", tc.Name)
	}
	return nil
}

func lineNumber(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	startPos := node.Lines().At(0).Start
	lineNum := 1
	for i := 0; i < startPos && i < len(source); i++ {
		if source[i] == '\n' {
			lineNum++
		}
	}
	return lineNum
}
