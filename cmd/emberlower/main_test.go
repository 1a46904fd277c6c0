package main

import (
	"os"
	"testing"

	"github.com/nalgeon/be"

	"github.com/emberlang/emberc/goldentest"
)

const fixturePath = "../../testdata/lowering.md"

func TestRunFixture_Lowering(t *testing.T) {
	src, err := os.ReadFile(fixturePath)
	be.Err(t, err, nil)

	cases, err := goldentest.ExtractTestCases(string(src))
	be.Err(t, err, nil)
	be.True(t, len(cases) > 0)

	for _, tc := range cases {
		if err := runFixture(tc); err != nil {
			t.Errorf("fixture %q: %v", tc.Name, err)
		}
	}
}

func TestTestCommand_Lowering(t *testing.T) {
	be.Err(t, testCommand([]string{fixturePath}), nil)
}

func TestTestCommand_MissingArgs(t *testing.T) {
	be.True(t, testCommand(nil) != nil)
}
