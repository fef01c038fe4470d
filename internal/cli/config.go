package cli

import (
	"strconv"

	"github.com/spf13/pflag"

	"rnashapes/internal/config"
)

// ApplyConfig copies config values into flags the user did not set on the
// command line. Flags missing from fs are ignored. The configured output is
// applied only when it is one of outputs.
func ApplyConfig(fs *pflag.FlagSet, cfg config.Config, outputs []string) error {
	set := func(name, value string) error {
		f := fs.Lookup(name)
		if f == nil || f.Changed || value == "" {
			return nil
		}
		return f.Value.Set(value)
	}
	if err := set("log-level", cfg.Log.Level); err != nil {
		return err
	}
	if err := set("log-format", cfg.Log.Format); err != nil {
		return err
	}
	if validOutput(cfg.Output, outputs) == nil {
		if err := set("output", cfg.Output); err != nil {
			return err
		}
	}
	if cfg.Threads > 0 {
		if err := set("threads", strconv.Itoa(cfg.Threads)); err != nil {
			return err
		}
	}
	if err := set("max-report", strconv.Itoa(cfg.Bench.MaxReport)); err != nil {
		return err
	}
	if cfg.Bench.FailOnMismatch {
		return set("fail-on-mismatch", "true")
	}
	return nil
}
