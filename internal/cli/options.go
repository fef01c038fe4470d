// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"rnashapes-core/shape"
	"rnashapes/internal/config"
)

// Global holds flags shared by every command.
type Global struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	Quiet      bool
}

// RegisterGlobal wires the persistent flags onto fs.
func RegisterGlobal(fs *pflag.FlagSet, g *Global) {
	fs.StringVar(&g.ConfigPath, "config", "", "YAML config file (default ./"+config.DefaultPath+" if present)")
	fs.StringVar(&g.LogLevel, "log-level", "info", "log level: debug | info | warn | error")
	fs.StringVar(&g.LogFormat, "log-format", "console", "log format: console | json")
	fs.BoolVarP(&g.Quiet, "quiet", "q", false, "only log errors")
}

// ShapeOptions are the flags of the root command (one structure).
type ShapeOptions struct {
	Structure string
	Output    string
	Level     int
	Pretty    bool
}

// RegisterShape wires the root command flags onto fs.
func RegisterShape(fs *pflag.FlagSet, o *ShapeOptions) {
	fs.StringVarP(&o.Structure, "structure", "s", "", "dot-bracket structure to abstract")
	fs.StringVarP(&o.Output, "output", "o", "text", "output: text | tsv | json | jsonl | yaml")
	fs.IntVarP(&o.Level, "level", "l", 0, "print only shape level 1, 3 or 5 (text; 0 = all)")
	fs.BoolVar(&o.Pretty, "pretty", false, "render an aligned block (text)")
}

// ShapeFromArgs fills Structure from a lone positional argument.
func ShapeFromArgs(o *ShapeOptions, posArgs []string) error {
	switch {
	case len(posArgs) > 1:
		return fmt.Errorf("expected one structure, got %d arguments", len(posArgs))
	case len(posArgs) == 1 && o.Structure != "":
		return errors.New("--structure conflicts with a positional structure")
	case len(posArgs) == 1:
		o.Structure = posArgs[0]
	}
	return ValidateShape(o)
}

// ValidateShape applies the root command invariants.
func ValidateShape(o *ShapeOptions) error {
	if o.Structure == "" {
		return errors.New("provide a structure with --structure or as an argument")
	}
	if err := validOutput(o.Output, ShapeFormats); err != nil {
		return err
	}
	return validLevel(o.Level)
}

// BatchOptions are the flags of the batch command.
type BatchOptions struct {
	Files       []string
	Output      string
	Threads     int
	Level       int
	Sort        bool
	Header      bool // true unless --no-header
	Pretty      bool
	SkipInvalid bool
}

// RegisterBatch wires batch flags onto fs and returns a pointer to the
// "no-header" bool that AfterParseBatch folds into Header.
func RegisterBatch(fs *pflag.FlagSet, o *BatchOptions) *bool {
	fs.StringVarP(&o.Output, "output", "o", "tsv", "output: tsv | text | json | jsonl | yaml")
	fs.IntVarP(&o.Threads, "threads", "t", 0, "worker threads (0 = all CPUs)")
	fs.IntVarP(&o.Level, "level", "l", 0, "print only shape level 1, 3 or 5 (text; 0 = all)")
	fs.BoolVar(&o.Sort, "sort", false, "sort records by file, then id")
	fs.BoolVar(&o.Pretty, "pretty", false, "render aligned blocks (text)")
	fs.BoolVar(&o.SkipInvalid, "skip-invalid", false, "log and skip invalid structures instead of failing")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line (tsv) / record ids (text)")
	return &noHeader
}

// AfterParseBatch finalizes header, expands positionals, then validates.
func AfterParseBatch(o *BatchOptions, noHeader *bool, posArgs []string) error {
	o.Header = !*noHeader
	files, err := ExpandPositionals(posArgs)
	if err != nil {
		return err
	}
	o.Files = files
	return ValidateBatch(o)
}

// ValidateBatch applies the batch command invariants.
func ValidateBatch(o *BatchOptions) error {
	if len(o.Files) == 0 {
		return errors.New("at least one structure file is required ('-' for stdin)")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if err := validOutput(o.Output, ShapeFormats); err != nil {
		return err
	}
	return validLevel(o.Level)
}

// BenchOptions are the flags of the bench command.
type BenchOptions struct {
	File           string
	Output         string
	Threads        int
	MaxReport      int
	Pretty         bool
	FailOnMismatch bool
}

// RegisterBench wires bench flags onto fs.
func RegisterBench(fs *pflag.FlagSet, o *BenchOptions) {
	fs.StringVarP(&o.Output, "output", "o", "text", "output: text | json | yaml")
	fs.IntVarP(&o.Threads, "threads", "t", 0, "worker threads (0 = all CPUs)")
	fs.IntVar(&o.MaxReport, "max-report", 20, "mismatches listed per level (0 = all)")
	fs.BoolVar(&o.Pretty, "pretty", false, "render a boxed summary (text)")
	fs.BoolVar(&o.FailOnMismatch, "fail-on-mismatch", false, "exit 1 when any case fails")
}

// ValidateBench applies the bench command invariants.
func ValidateBench(o *BenchOptions) error {
	if o.File == "" {
		return errors.New("a regression file is required ('-' for stdin)")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.MaxReport < 0 {
		return errors.New("--max-report must be ≥ 0")
	}
	return validOutput(o.Output, ReportFormats)
}

// Output formats accepted per command.
var (
	ShapeFormats  = []string{"text", "tsv", "json", "jsonl", "yaml"}
	ReportFormats = []string{"text", "json", "yaml"}
)

func validOutput(format string, allowed []string) error {
	for _, f := range allowed {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q", format)
}

func validLevel(l int) error {
	if l == 0 {
		return nil
	}
	if _, err := shape.ParseLevel(fmt.Sprint(l)); err != nil {
		return fmt.Errorf("invalid --level %d (want 1, 3 or 5)", l)
	}
	return nil
}
