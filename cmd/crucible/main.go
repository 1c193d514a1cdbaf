// Command crucible prints the minimal walk cost of a digit grid under each
// run-length variant.
//
// Usage:
//
//	crucible [-v] [-m unconstrained|mandatory] [-r min:max] [file]
//
// The grid is read from file, or from stdin when no file is given.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
)

const usage = "usage: crucible [-v] [-m unconstrained|mandatory] [-r min:max] [file]"

var errUsage = errors.New(usage)

func main() {
	logger := log.New()
	logger.Out = os.Stderr
	logger.Formatter = &log.TextFormatter{DisableTimestamp: true}

	if err := run(os.Args, os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatalln(err)
	}
}

// config is what the command line asks for.
type config struct {
	verbose  bool
	variants []crucible.Variant
	path     string
}

func parseArgs(args []string) (*config, error) {
	opts, optind, err := getopt.Getopts(args, "vm:r:")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	cfg := &config{}
	for _, opt := range opts {
		switch opt.Option {
		case 'v':
			cfg.verbose = true
		case 'm':
			v, ok := crucible.LookupVariant(opt.Value)
			if !ok {
				return nil, fmt.Errorf("%w: unknown variant %q", errUsage, opt.Value)
			}
			cfg.variants = append(cfg.variants, v)
		case 'r':
			b, err := parseBounds(opt.Value)
			if err != nil {
				return nil, err
			}
			cfg.variants = append(cfg.variants, crucible.Variant{Name: "custom " + b.String(), Bounds: b})
		}
	}
	if len(cfg.variants) == 0 {
		cfg.variants = crucible.Variants()
	}
	rest := args[optind:]
	switch len(rest) {
	case 0:
	case 1:
		cfg.path = rest[0]
	default:
		return nil, errUsage
	}

	return cfg, nil
}

// parseBounds reads "min:max".
func parseBounds(s string) (crucible.RunBounds, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return crucible.RunBounds{}, fmt.Errorf("%w: bounds %q are not min:max", errUsage, s)
	}
	minRun, err := strconv.Atoi(lo)
	if err != nil {
		return crucible.RunBounds{}, fmt.Errorf("%w: bad min in %q", errUsage, s)
	}
	maxRun, err := strconv.Atoi(hi)
	if err != nil {
		return crucible.RunBounds{}, fmt.Errorf("%w: bad max in %q", errUsage, s)
	}
	b := crucible.RunBounds{Min: minRun, Max: maxRun}

	return b, b.Validate()
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}
	if cfg.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	in := stdin
	if cfg.path != "" {
		f, err := os.Open(cfg.path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	g, err := gridgraph.Parse(in)
	if err != nil {
		return err
	}
	logger.WithFields(log.Fields{"width": g.Width, "height": g.Height}).Debug("grid loaded")

	for _, o := range crucible.SolveAll(g, cfg.variants, crucible.WithLogger(logger)) {
		switch {
		case o.Err == nil:
			fmt.Fprintf(stdout, "%s: %d\n", o.Variant.Name, o.Cost)
		case errors.Is(o.Err, crucible.ErrNoPath):
			fmt.Fprintf(stdout, "%s: no solution\n", o.Variant.Name)
		default:
			return fmt.Errorf("%s: %w", o.Variant.Name, o.Err)
		}
	}

	return nil
}
