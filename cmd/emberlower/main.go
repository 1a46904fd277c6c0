// Command emberlower drives pass 1 from the command line: lowering a
// textual AST to an instruction stream, or running literate Markdown
// fixtures against the lowering pass.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/emberlang/emberc/ast"
	"github.com/emberlang/emberc/goldentest"
	"github.com/emberlang/emberc/ir"
	"github.com/emberlang/emberc/lower"
)

func main() {
	if len(os.Args) < 2 {
		showUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "lower":
		err = lowerCommand(os.Args[2:])
	case "test":
		err = testCommand(os.Args[2:])
	case "-h", "-help", "--help", "help":
		showUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "emberlower: unknown command %q\n", os.Args[1])
		showUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "emberlower: %v\n", err)
		os.Exit(1)
	}
}

func showUsage() {
	fmt.Fprintln(os.Stderr, `usage:
  emberlower lower [-used=true] [file]   lower a textual AST to an instruction stream
  emberlower test <file.md>...           run literate lowering fixtures`)
}

func lowerCommand(args []string) error {
	fs := flag.NewFlagSet("lower", flag.ExitOnError)
	used := fs.Bool("used", true, "lower the root block as a used (value-producing) expression")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var src []byte
	var err error
	if fs.NArg() > 0 {
		src, err = os.ReadFile(fs.Arg(0))
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	root, err := ast.Parse(string(src))
	if err != nil {
		return fmt.Errorf("parsing ast: %w", err)
	}
	instrs, err := lower.Lower(root, *used)
	if err != nil {
		return fmt.Errorf("lowering: %w", err)
	}

	fmt.Println(ir.Sexpr(instrs))
	return nil
}

func testCommand(args []string) error {
	fs := flag.NewFlagSet("test", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("test requires at least one Markdown fixture file")
	}

	total, failed := 0, 0
	for _, path := range fs.Args() {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		cases, err := goldentest.ExtractTestCases(string(src))
		if err != nil {
			return fmt.Errorf("extracting fixtures from %s: %w", path, err)
		}
		for _, tc := range cases {
			total++
			if err := runFixture(tc); err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "FAIL %s: %s: %v\n", path, tc.Name, err)
			} else {
				fmt.Printf("ok   %s: %s\n", path, tc.Name)
			}
		}
	}

	fmt.Printf("%d passed, %d failed, %d total\n", total-failed, failed, total)
	if failed > 0 {
		return fmt.Errorf("%d fixture(s) failed", failed)
	}
	return nil
}

func runFixture(tc goldentest.TestCase) error {
	root, err := ast.Parse(tc.Input)
	if err != nil {
		return fmt.Errorf("parsing ast fence: %w", err)
	}

	instrs, lowerErr := lower.Lower(root, tc.Used)
	for _, a := range tc.Assertions {
		switch a.Type {
		case goldentest.AssertionTypeInstr:
			if lowerErr != nil {
				return fmt.Errorf("expected instructions, got error: %v", lowerErr)
			}
			got := ir.Sexpr(instrs)
			if got != a.Content {
				return fmt.Errorf("instr mismatch:\n got: %s\nwant: %s", got, a.Content)
			}
		case goldentest.AssertionTypeError:
			if lowerErr == nil {
				return fmt.Errorf("expected error %q, lowering succeeded", a.Content)
			}
			if lowerErr.Error() != a.Content {
				return fmt.Errorf("error mismatch:\n got: %s\nwant: %s", lowerErr.Error(), a.Content)
			}
		}
	}
	return nil
}
