// Command wollokparse parses a single source file and prints its AST
// followed by its list of recoverable parse problems.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/PalumboN/wollok-parser/ast"
	"github.com/PalumboN/wollok-parser/parser"
)

func main() {
	var format string

	rootCmd := &cobra.Command{
		Use:           "wollokparse [file]",
		Short:         "Parse a source file and print its AST and problems",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode, err := run(cmd.OutOrStdout(), args[0], format)
			if err != nil {
				return err
			}
			if exitCode != 0 {
				os.Exit(exitCode)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&format, "format", "tree", `output format: "tree", "json", or "cbor"`)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, file, format string) (int, error) {
	source, err := os.ReadFile(file)
	if err != nil {
		return 1, errors.Wrapf(err, "reading %s", file)
	}

	pkg, err := parser.ParseFile(file, string(source))
	if err != nil {
		return 1, errors.Wrapf(err, "parsing %s", file)
	}

	switch format {
	case "json":
		if err := writeJSON(w, pkg); err != nil {
			return 1, errors.Wrap(err, "rendering JSON")
		}
	case "cbor":
		if err := writeCBOR(w, pkg); err != nil {
			return 1, errors.Wrap(err, "rendering CBOR")
		}
	default:
		printTree(w, pkg)
	}

	printProblems(w, file, string(source), pkg.ProblemsList)
	if len(pkg.ProblemsList) > 0 {
		return 1, nil
	}
	return 0, nil
}

func printProblems(w io.Writer, file, source string, problems []ast.Problem) {
	for _, p := range problems {
		fmt.Fprintf(w, "%s: %s\n%s\n", file, p.Code, codeSnippet(source, p))
		region := source[p.Source.Start.Offset:p.Source.End.Offset]
		if suggestion := closestKeyword(firstWord(region)); suggestion != "" {
			fmt.Fprintf(w, "  did you mean %q?\n", suggestion)
		}
	}
}
