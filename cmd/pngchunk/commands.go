package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/meigma/pngchunk"
	"github.com/meigma/pngchunk/internal/batch"
	"github.com/meigma/pngchunk/internal/fileops"
)

func newFlagSet(name, synopsis string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: pngchunk %s\n", synopsis)
		fs.PrintDefaults()
	}
	return fs
}

func parseArgs(fs *flag.FlagSet, args []string, minArgs, maxArgs int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", errUsage, fs.Name(), err)
	}
	pos := fs.Args()
	if len(pos) < minArgs || (maxArgs >= 0 && len(pos) > maxArgs) {
		fs.Usage()
		return nil, fmt.Errorf("%w: %s: wrong number of arguments", errUsage, fs.Name())
	}
	return pos, nil
}

// parseTag accepts only tags that Parse would accept back from a file.
func parseTag(s string) (pngchunk.ChunkTag, error) {
	tag, err := pngchunk.ParseChunkTag(s)
	if err != nil {
		return pngchunk.ChunkTag{}, err
	}
	if !tag.IsValid() {
		return pngchunk.ChunkTag{}, fmt.Errorf("%w: %q has its reserved bit set (third letter must be uppercase)",
			pngchunk.ErrInvalidTag, s)
	}
	return tag, nil
}

func (c *cli) save(path string, img *pngchunk.PNG) error {
	if err := fileops.WriteFileAtomic(path, img.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	c.logger.Debug("wrote file", slog.String("path", path), slog.Int("chunks", img.Len()))
	return nil
}

func (c *cli) encode(args []string, stderr io.Writer) error {
	fs := newFlagSet("encode", "encode [-z none|zlib|zstd] <file> <tag> <message> [output]", stderr)
	compName := fs.String("z", "none", "message compression: none, zlib or zstd")
	pos, err := parseArgs(fs, args, 3, 4)
	if err != nil {
		return err
	}
	comp, err := pngchunk.ParseCompression(*compName)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	tag, err := parseTag(pos[1])
	if err != nil {
		return err
	}

	img, err := c.processor().Load(pos[0])
	if err != nil {
		return err
	}
	chunk, err := pngchunk.NewMessageChunk(tag, []byte(pos[2]), comp)
	if err != nil {
		return err
	}
	img.Append(chunk)

	out := pos[0]
	if len(pos) == 4 {
		out = pos[3]
	}
	if err := c.save(out, img); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Encoded %d byte message into %s chunk of %s\n", len(pos[2]), tag, out)
	return nil
}

func (c *cli) decode(args []string, stderr io.Writer) error {
	fs := newFlagSet("decode", "decode [-z none|zlib|zstd] <file> <tag>", stderr)
	compName := fs.String("z", "none", "message compression: none, zlib or zstd")
	pos, err := parseArgs(fs, args, 2, 2)
	if err != nil {
		return err
	}
	comp, err := pngchunk.ParseCompression(*compName)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	tag, err := parseTag(pos[1])
	if err != nil {
		return err
	}

	img, err := c.processor().Load(pos[0])
	if err != nil {
		return err
	}
	chunk, ok := img.ChunkByTag(tag)
	if !ok {
		fmt.Fprintf(c.stdout, "No message matching '%s' chunk type in %s\n", tag, pos[0])
		return nil
	}
	msg, err := chunk.Message(comp, c.cfg.maxSize)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Decoded: %s\n", msg)
	return nil
}

func (c *cli) remove(args []string, stderr io.Writer) error {
	fs := newFlagSet("remove", "remove <file> <tag> [output]", stderr)
	pos, err := parseArgs(fs, args, 2, 3)
	if err != nil {
		return err
	}
	tag, err := parseTag(pos[1])
	if err != nil {
		return err
	}

	img, err := c.processor().Load(pos[0])
	if err != nil {
		return err
	}
	removed, err := img.RemoveFirstByTag(tag)
	if err != nil {
		return fmt.Errorf("%s: %w", pos[0], err)
	}

	out := pos[0]
	if len(pos) == 3 {
		out = pos[2]
	}
	if err := c.save(out, img); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Removed %s chunk (%d bytes) from %s\n", tag, removed.Length(), out)
	return nil
}

func (c *cli) print(args []string, stderr io.Writer) error {
	fs := newFlagSet("print", "print [-digest] [-strict] [-workers n] <file>...", stderr)
	withDigest := fs.Bool("digest", false, "show the sha256 digest of each payload")
	strict := fs.Bool("strict", false, "reject bytes left after the last chunk")
	workers := fs.Int("workers", 0, "files loaded at once: <0 serial, 0 auto, >0 fixed")
	paths, err := parseArgs(fs, args, 1, -1)
	if err != nil {
		return err
	}

	p := c.processor(
		batch.WithWorkers(*workers),
		batch.WithParseOptions(pngchunk.WithStrictTrailer(*strict)),
	)
	results, err := p.Summarize(context.Background(), paths)
	if err != nil {
		return err
	}

	var errs []error
	for _, r := range results {
		if len(results) > 1 {
			fmt.Fprintf(c.stdout, "%s:\n", r.Path)
		}
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		for i, chunk := range r.PNG.All() {
			if *withDigest {
				fmt.Fprintf(c.stdout, "Chunk [%d]: %s %s\n", i, chunk, chunk.Digest())
			} else {
				fmt.Fprintf(c.stdout, "Chunk [%d]: %s\n", i, chunk)
			}
		}
	}
	return errors.Join(errs...)
}
