// Command pngchunk hides, reveals and removes messages stored in PNG chunks.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/meigma/pngchunk/internal/batch"
	"github.com/meigma/pngchunk/internal/fileops"
)

const usage = `usage: pngchunk [-v] [-max-size bytes] <command> [arguments]

commands:
    encode [-z none|zlib|zstd] <file> <tag> <message> [output]
    decode [-z none|zlib|zstd] <file> <tag>
    remove <file> <tag> [output]
    print  [-digest] [-strict] [-workers n] <file>...

Tags are four ASCII letters with an uppercase third letter, e.g. ruSt.
`

// errUsage marks errors caused by bad command-line arguments.
var errUsage = errors.New("usage")

type config struct {
	verbose bool
	maxSize uint64
}

type cli struct {
	cfg    config
	stdout io.Writer
	logger *slog.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config
	fs := flag.NewFlagSet("pngchunk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	fs.BoolVar(&cfg.verbose, "v", false, "log debug output to stderr")
	fs.Uint64Var(&cfg.maxSize, "max-size", fileops.DefaultMaxFileSize, "largest file to read in bytes (0 = unlimited)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	c := &cli{
		cfg:    cfg,
		stdout: stdout,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}

	var err error
	switch cmd, cmdArgs := rest[0], rest[1:]; cmd {
	case "encode":
		err = c.encode(cmdArgs, stderr)
	case "decode":
		err = c.decode(cmdArgs, stderr)
	case "remove":
		err = c.remove(cmdArgs, stderr)
	case "print":
		err = c.print(cmdArgs, stderr)
	case "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "pngchunk: unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "pngchunk: %v\n", err)
		return 2
	default:
		fmt.Fprintf(stderr, "pngchunk: %v\n", err)
		return 1
	}
}

// processor returns a batch processor configured from the global flags.
func (c *cli) processor(opts ...batch.Option) *batch.Processor {
	base := []batch.Option{
		batch.WithMaxFileSize(c.cfg.maxSize),
		batch.WithLogger(c.logger),
	}
	return batch.NewProcessor(append(base, opts...)...)
}
