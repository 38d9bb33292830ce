package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bjaus/tabkit"
	"github.com/bjaus/tabkit/arrowtab"
	"github.com/bjaus/tabkit/internal/config"
	"github.com/bjaus/tabkit/internal/logger"
)

// StdStream is the file name that stands for standard input or output.
const StdStream = "-"

const parquetExt = ".parquet"

// ErrWhereCount indicates that find received other than one --where clause.
var ErrWhereCount = errors.New("find needs exactly one --where clause")

// Runner executes the tool's commands against a validated configuration.
type Runner struct {
	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
}

// NewRunner returns a Runner reading "-" or empty inputs from stdin and
// writing "-" or empty outputs to stdout.
func NewRunner(cfg *config.Config, stdin io.Reader, stdout io.Writer) *Runner {
	return &Runner{cfg: cfg, stdin: stdin, stdout: stdout}
}

// Convert renders an input table in the configured format.
func (r *Runner) Convert(ctx context.Context, input, output string) error {
	t, err := r.LoadTable(ctx, input)
	if err != nil {
		return err
	}

	return r.WriteTable(ctx, output, t)
}

// Filter renders the rows of the input table that satisfy every clause.
func (r *Runner) Filter(ctx context.Context, input, output string, clauses []Clause) error {
	t, err := r.LoadTable(ctx, input)
	if err != nil {
		return err
	}

	preds, err := Predicates(t, clauses)
	if err != nil {
		return err
	}

	filtered, err := tabkit.FilterRows(t, preds...)
	if err != nil {
		return fmt.Errorf("failed to filter rows: %w", err)
	}

	logger.Debugf(ctx, "Kept %d of %d rows", filtered.Len(), t.Len())

	return r.WriteTable(ctx, output, filtered)
}

// Find renders the first row matching a single clause. No match fails with
// tabkit.ErrNoRecord.
func (r *Runner) Find(ctx context.Context, input, output string, clauses []Clause) error {
	if len(clauses) != 1 {
		return fmt.Errorf("%w: got %d", ErrWhereCount, len(clauses))
	}

	t, err := r.LoadTable(ctx, input)
	if err != nil {
		return err
	}

	preds, err := Predicates(t, clauses)
	if err != nil {
		return err
	}

	row, err := tabkit.FindRow(t, preds[0].Column, preds[0].Value)
	if err != nil {
		return fmt.Errorf("failed to find row: %w", err)
	}

	found := t.CloneSchema()
	if err := found.AddRow(row.Values()...); err != nil {
		return err
	}

	return r.WriteTable(ctx, output, found)
}

// Mapping renders a flat YAML mapping as a key/value table. Delimited output
// goes straight through the mapping formatter; other formats render a table.
// With sorted set, entries are ordered by key instead of document order.
func (r *Runner) Mapping(ctx context.Context, input, output string, sorted bool) error {
	in, closeInput, err := r.open(input)
	if err != nil {
		return err
	}
	defer closeInput()

	entries, err := ReadYAMLMapping(in)
	if err != nil {
		return err
	}

	logger.Debugf(ctx, "Read %d mapping entries from %s", len(entries), displayName(input))

	if r.cfg.DelimitedOutput() && !isParquet(output) {
		return r.writeTo(output, func(w io.Writer) error {
			if sorted {
				_, err := io.WriteString(w, tabkit.MappingToDelimitedText(
					TextMap(entries), r.cfg.Delimiter, r.cfg.KeyName, r.cfg.ValueName))

				return err
			}

			return tabkit.WriteMapping(w, TextPairs(entries), r.cfg.Delimiter, r.cfg.KeyName, r.cfg.ValueName)
		})
	}

	if sorted {
		SortEntries(entries)
	}

	t, err := MappingTable(entries, r.cfg.KeyName, r.cfg.ValueName)
	if err != nil {
		return err
	}

	return r.WriteTable(ctx, output, t)
}

// LoadTable reads a table from a Parquet file or from delimited text in a
// file or on stdin.
func (r *Runner) LoadTable(ctx context.Context, input string) (*tabkit.Table, error) {
	if isParquet(input) {
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()

		t, err := arrowtab.ReadParquet(ctx, f)
		if err != nil {
			return nil, err
		}

		logger.Debugf(ctx, "Loaded %d rows from %s", t.Len(), input)

		return t, nil
	}

	in, closeInput, err := r.open(input)
	if err != nil {
		return nil, err
	}
	defer closeInput()

	t, err := tabkit.ReadDelimited(in, r.cfg.Delimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", displayName(input), err)
	}

	logger.Debugf(ctx, "Loaded %d rows from %s", t.Len(), displayName(input))

	return t, nil
}

// WriteTable writes t to output in the configured format, or as Parquet when
// output ends in .parquet.
func (r *Runner) WriteTable(ctx context.Context, output string, t *tabkit.Table) error {
	if isParquet(output) {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}

		defer func() { _ = f.Close() }()

		if err := arrowtab.WriteParquet(f, t); err != nil {
			return err
		}

		logger.Debugf(ctx, "Wrote %d rows to %s", t.Len(), output)

		return nil
	}

	return r.writeTo(output, func(w io.Writer) error {
		return tabkit.Write(w, r.cfg.ParsedFormat, t)
	})
}

func (r *Runner) open(input string) (io.Reader, func(), error) {
	if input == "" || input == StdStream {
		return r.stdin, func() {}, nil
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

func (r *Runner) writeTo(output string, write func(io.Writer) error) error {
	if output == "" || output == StdStream {
		return write(r.stdout)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func isParquet(name string) bool {
	return strings.EqualFold(filepath.Ext(name), parquetExt)
}

func displayName(input string) string {
	if input == "" || input == StdStream {
		return "stdin"
	}

	return input
}
