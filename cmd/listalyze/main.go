package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jacoelho/listalyze"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("listalyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	noDot := fs.Bool("no-dot", false, "do not require a trailing period on each label")
	mixedCase := fs.Bool("mixed-case", false, "match alphabetic labels case-insensitively")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [options] <label>...\n\n", os.Args[0]),
			writeln(stderr, "Infers the numbering scheme of a sequence of list-item labels."),
			writeln(stderr, "Pass a single \"-\" to read one label per line from stdin."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	labels := fs.Args()
	if len(labels) == 1 && labels[0] == "-" {
		var err error
		labels, err = readLabels(stdin)
		if err != nil {
			if writeErr := writef(stderr, "error reading labels: %v\n", err); writeErr != nil {
				return 1
			}
			return 1
		}
	}
	if len(labels) == 0 {
		if err := writeln(stderr, "error: at least one label argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	opts := listalyze.NewOptions().
		WithRequireDot(!*noDot).
		WithMixedCase(*mixedCase)

	result := listalyze.AnalyzeWithOptions(labels, opts)
	if !result.Recognized() {
		if err := writeln(stderr, "no numbering scheme recognized"); err != nil {
			return 1
		}
		return 1
	}

	if err := writef(stdout, "scheme: %s\nvalues: %s\ndefault-order: %t\n",
		result.Scheme, joinInts(result.Ordinals), result.DefaultOrder); err != nil {
		return 1
	}
	return 0
}

func readLabels(r io.Reader) ([]string, error) {
	var labels []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		labels = append(labels, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return labels, nil
}

func joinInts(values []int) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
