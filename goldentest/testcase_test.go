package goldentest

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestExtractTestCases_BasicTest(t *testing.T) {
	markdown := "## Test: true literal\n" +
		"```ast\n(block (true))\n```\n" +
		"```instr\n(PushTrue)\n```\n"

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 1)

	tc := testCases[0]
	be.Equal(t, tc.Name, "true literal")
	be.Equal(t, tc.Input, "(block (true))")
	be.Equal(t, tc.Used, true)
	be.Equal(t, len(tc.Assertions), 1)
	be.Equal(t, tc.Assertions[0].Type, AssertionTypeInstr)
	be.Equal(t, tc.Assertions[0].Content, "(PushTrue)")
}

func TestExtractTestCases_UsedFence(t *testing.T) {
	markdown := "## Test: discarded literal\n" +
		"```ast\n(block (true))\n```\n" +
		"```used\nfalse\n```\n" +
		"```instr\n\n```\n"

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 1)
	be.Equal(t, testCases[0].Used, false)
}

func TestExtractTestCases_ErrorAssertion(t *testing.T) {
	markdown := "## Test: unknown construct\n" +
		"```ast\n(block (frobnicate))\n```\n" +
		"```error\nunknown construct \"frobnicate\"\n```\n"

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 1)
	be.Equal(t, testCases[0].Assertions[0].Type, AssertionTypeError)
}

func TestExtractTestCases_MultipleTests(t *testing.T) {
	markdown := "## Test: first\n" +
		"```ast\n(block (true))\n```\n" +
		"```instr\n(PushTrue)\n```\n\n" +
		"## Test: second\n" +
		"```ast\n(block (false))\n```\n" +
		"```instr\n(PushFalse)\n```\n"

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 2)
	be.Equal(t, testCases[0].Name, "first")
	be.Equal(t, testCases[1].Name, "second")
}

func TestExtractTestCases_EmptyFile(t *testing.T) {
	testCases, err := ExtractTestCases("")
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 0)
}

func TestExtractTestCases_NoTestCases(t *testing.T) {
	markdown := "# Some document\n\nJust regular markdown, no tests here.\n"
	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 0)
}

func TestExtractTestCases_FenceOutsideTestCase(t *testing.T) {
	markdown := "# Document\n\n```ast\n(block (true))\n```\n"
	_, err := ExtractTestCases(markdown)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "ast fence found outside of test case"))
	be.True(t, strings.Contains(err.Error(), "line"))
}

func TestExtractTestCases_UnknownFenceLanguageInTest(t *testing.T) {
	markdown := "## Test: with unknown fence\n" +
		"```python\nprint(\"hi\")\n```\n" +
		"```ast\n(block (true))\n```\n" +
		"```instr\n(PushTrue)\n```\n"

	_, err := ExtractTestCases(markdown)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), `unknown fence language "python"`))
}

func TestExtractTestCases_TestMissingInputFence(t *testing.T) {
	markdown := "## Test: no input\n```instr\n(PushTrue)\n```\n"
	_, err := ExtractTestCases(markdown)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), `test "no input" has no ast fence`))
}

func TestExtractTestCases_TestMissingAssertionFence(t *testing.T) {
	markdown := "## Test: no assertions\n```ast\n(block (true))\n```\n"
	_, err := ExtractTestCases(markdown)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), `test "no assertions" has no instr or error assertion fence`))
}

func TestExtractTestCases_MultipleInputFences(t *testing.T) {
	markdown := "## Test: multiple inputs\n" +
		"```ast\n(block (true))\n```\n" +
		"```ast\n(block (false))\n```\n" +
		"```instr\n(PushTrue)\n```\n"

	_, err := ExtractTestCases(markdown)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "multiple ast fences found"))
}

func TestExtractTestCases_AllowFencesWithoutLanguage(t *testing.T) {
	markdown := "# Document\n\n```\nplain code block\n```\n\n" +
		"## Test: valid test\n" +
		"```ast\n(block (true))\n```\n" +
		"```instr\n(PushTrue)\n```\n\n" +
		"```\nmore plain code\n```\n"

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 1)
	be.Equal(t, testCases[0].Name, "valid test")
}

func TestExtractTestCases_ErrorInSecondTest(t *testing.T) {
	markdown := "## Test: first test\n" +
		"```ast\n(block (true))\n```\n" +
		"```instr\n(PushTrue)\n```\n\n" +
		"## Test: second test missing input\n" +
		"```instr\n(PushFalse)\n```\n"

	_, err := ExtractTestCases(markdown)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), `test "second test missing input" has no ast fence`))
}

func TestExtractTestCases_InvalidUsedValue(t *testing.T) {
	markdown := "## Test: bad used flag\n" +
		"```ast\n(block (true))\n```\n" +
		"```used\nmaybe\n```\n" +
		"```instr\n(PushTrue)\n```\n"

	_, err := ExtractTestCases(markdown)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "must be true or false"))
}
