// zxc is a parallel block compression tool.
//
// It compresses files (or stdin) into the zxc frame format and back,
// using every CPU by default. Compressed files get the .xc suffix and
// the original file is removed unless --keep is given, following the
// conventions of gzip-style tools.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/zxclab/zxc"
	"github.com/zxclab/zxc/format"
)

const suffix = ".xc"

const version = "1.0.0"

type cliConfig struct {
	decompress bool
	bench      bool
	level      int
	threads    int
	codec      format.CodecType
	checksum   bool
	blockSize  uint32
	keep       bool
	stdout     bool
	force      bool
	verbose    bool
	quiet      bool
}

// cliResult is the outcome of argument parsing, separated from run so
// flag handling is testable without touching files or stdio.
type cliResult struct {
	cfg     cliConfig
	files   []string
	help    bool
	version bool
	flagSet *pflag.FlagSet
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "zxc: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	parsed, err := parseCLI(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(parsed.flagSet)
			return nil
		}
		return err
	}

	if parsed.help {
		printHelp(parsed.flagSet)
		return nil
	}
	if parsed.version {
		fmt.Printf("zxc %s\n", version)
		return nil
	}

	cfg := &parsed.cfg

	if cfg.bench {
		if len(parsed.files) == 0 {
			return errors.New("bench mode needs at least one input file")
		}
		for _, path := range parsed.files {
			if err := runBench(cfg, path); err != nil {
				return err
			}
		}
		return nil
	}

	if len(parsed.files) == 0 {
		return processStream(cfg, os.Stdin, os.Stdout, "stdin")
	}

	for _, path := range parsed.files {
		if path == "-" {
			if err := processStream(cfg, os.Stdin, os.Stdout, "stdin"); err != nil {
				return err
			}
			continue
		}
		if err := processFile(cfg, path); err != nil {
			return err
		}
	}

	return nil
}

func parseCLI(args []string) (*cliResult, error) {
	res := &cliResult{}
	cfg := &res.cfg
	var compressFlag bool
	var codecName string

	flagSet := pflag.NewFlagSet("zxc", pflag.ContinueOnError)
	res.flagSet = flagSet
	flagSet.BoolVarP(&compressFlag, "compress", "z", false, "compress (the default mode)")
	flagSet.BoolVarP(&cfg.decompress, "decompress", "d", false, "decompress instead of compress")
	flagSet.BoolVarP(&cfg.bench, "bench", "b", false, "benchmark compression of each file in memory")
	flagSet.IntVarP(&cfg.level, "level", "l", format.DefaultLevel, "compression level (1=fastest, 5=best)")
	flagSet.IntVarP(&cfg.threads, "threads", "T", 0, "worker threads (0 = one per CPU, 1 = sequential)")
	flagSet.StringVar(&codecName, "codec", "zstd", "block codec: zstd, s2, lz4, none")
	flagSet.BoolVarP(&cfg.checksum, "checksum", "C", false, "write (or verify) an xxHash64 integrity trailer")
	flagSet.Uint32Var(&cfg.blockSize, "block-size", 0, "block size in bytes (0 = 256KiB default)")
	flagSet.BoolVarP(&cfg.keep, "keep", "k", false, "keep input files")
	flagSet.BoolVarP(&cfg.stdout, "stdout", "c", false, "write to standard output, keep input files")
	flagSet.BoolVarP(&cfg.force, "force", "f", false, "overwrite existing output, allow terminal output")
	flagSet.BoolVarP(&cfg.verbose, "verbose", "v", false, "report sizes and ratios")
	flagSet.BoolVarP(&cfg.quiet, "quiet", "q", false, "suppress warnings")
	flagSet.BoolVarP(&res.version, "version", "V", false, "print version and exit")
	flagSet.BoolVarP(&res.help, "help", "h", false, "show help")

	// Shorthand levels in the style of gzip: -1 .. -5.
	for lv := format.MinLevel; lv <= format.MaxLevel; lv++ {
		name := fmt.Sprintf("%d", lv)
		flagSet.BoolP(name, name, false, fmt.Sprintf("compression level %d", lv))
		_ = flagSet.MarkHidden(name)
	}

	if err := flagSet.Parse(args); err != nil {
		return res, err
	}

	for lv := format.MinLevel; lv <= format.MaxLevel; lv++ {
		if set, _ := flagSet.GetBool(fmt.Sprintf("%d", lv)); set {
			cfg.level = lv
		}
	}

	// -z wins over -d, as in the original tool.
	if compressFlag {
		cfg.decompress = false
	}

	var err error
	cfg.codec, err = parseCodec(codecName)
	if err != nil {
		return res, err
	}

	res.files = flagSet.Args()

	return res, nil
}

func parseCodec(name string) (format.CodecType, error) {
	switch strings.ToLower(name) {
	case "zstd":
		return format.CodecZstd, nil
	case "s2":
		return format.CodecS2, nil
	case "lz4":
		return format.CodecLZ4, nil
	case "none":
		return format.CodecNone, nil
	default:
		return 0, fmt.Errorf("unknown codec %q (want zstd, s2, lz4 or none)", name)
	}
}

func (c *cliConfig) options() []zxc.Option {
	opts := []zxc.Option{
		zxc.WithLevel(c.level),
		zxc.WithThreads(c.threads),
		zxc.WithCodec(c.codec),
		zxc.WithChecksum(c.checksum),
	}
	if c.blockSize > 0 {
		opts = append(opts, zxc.WithBlockSize(c.blockSize))
	}

	return opts
}

// processStream handles the stdin/stdout path.
func processStream(cfg *cliConfig, in io.Reader, out *os.File, name string) error {
	if !cfg.decompress && !cfg.force && isTerminal(out) {
		return errors.New("refusing to write compressed data to a terminal (use --force or redirect)")
	}

	if cfg.decompress {
		res, err := zxc.StreamDecompress(out, in, cfg.options()...)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		report(cfg, name, res.BytesRead, res.BytesWritten)

		return nil
	}

	res, err := zxc.StreamCompress(out, in, cfg.options()...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	report(cfg, name, res.BytesRead, res.BytesWritten)

	return nil
}

func processFile(cfg *cliConfig, path string) error {
	if cfg.stdout {
		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		return processStream(cfg, in, os.Stdout, path)
	}

	outPath, err := outputPath(cfg, path)
	if err != nil {
		return err
	}

	if !cfg.force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
		}
	}

	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	var res zxc.Result
	if cfg.decompress {
		res, err = zxc.StreamDecompress(out, in, cfg.options()...)
	} else {
		res, err = zxc.StreamCompress(out, in, cfg.options()...)
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(outPath)

		return fmt.Errorf("%s: %w", path, err)
	}

	report(cfg, path, res.BytesRead, res.BytesWritten)

	if !cfg.keep {
		in.Close()
		if err := os.Remove(path); err != nil && !cfg.quiet {
			fmt.Fprintf(os.Stderr, "zxc: warning: cannot remove %s: %v\n", path, err)
		}
	}

	return nil
}

// benchStats holds the timings of one in-memory benchmark pass.
type benchStats struct {
	originalSize   int
	compressedSize int
	compressTime   time.Duration
	decompressTime time.Duration
}

func (s benchStats) ratio() float64 {
	if s.originalSize == 0 {
		return 0
	}

	return float64(s.compressedSize) / float64(s.originalSize) * 100
}

func (s benchStats) throughput(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}

	return float64(s.originalSize) / d.Seconds() / (1 << 20)
}

// benchBuffer times one compress and one decompress pass over data and
// verifies the round trip.
func benchBuffer(cfg *cliConfig, data []byte) (benchStats, error) {
	stats := benchStats{originalSize: len(data)}

	start := time.Now()
	compressed, err := zxc.CompressWithOptions(data, cfg.options()...)
	if err != nil {
		return stats, err
	}
	stats.compressTime = time.Since(start)
	stats.compressedSize = len(compressed)

	start = time.Now()
	original, err := zxc.Decompress(compressed, cfg.options()...)
	if err != nil {
		return stats, err
	}
	stats.decompressTime = time.Since(start)

	if len(original) != len(data) {
		return stats, fmt.Errorf("round trip produced %d bytes, want %d", len(original), len(data))
	}

	return stats, nil
}

func runBench(cfg *cliConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	stats, err := benchBuffer(cfg, data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Printf("%s: %d bytes, level %d, %s\n", path, stats.originalSize, cfg.level, cfg.codec)
	fmt.Printf("  compress:   %8.1f MB/s, %d bytes (%.1f%%)\n",
		stats.throughput(stats.compressTime), stats.compressedSize, stats.ratio())
	fmt.Printf("  decompress: %8.1f MB/s\n", stats.throughput(stats.decompressTime))

	return nil
}

// outputPath derives the destination name: append the suffix when
// compressing, strip it when decompressing.
func outputPath(cfg *cliConfig, path string) (string, error) {
	if cfg.decompress {
		if !strings.HasSuffix(path, suffix) {
			return "", fmt.Errorf("%s: unknown suffix, expected %s (use --stdout to decompress anyway)", path, suffix)
		}

		return strings.TrimSuffix(path, suffix), nil
	}

	if strings.HasSuffix(path, suffix) {
		return "", fmt.Errorf("%s already has %s suffix, refusing to compress again", path, suffix)
	}

	return path + suffix, nil
}

func report(cfg *cliConfig, name string, read, written int64) {
	if !cfg.verbose || cfg.quiet {
		return
	}

	if cfg.decompress {
		fmt.Fprintf(os.Stderr, "%s: %d -> %d bytes\n", name, read, written)

		return
	}

	ratio := 0.0
	if read > 0 {
		ratio = float64(written) / float64(read) * 100
	}
	fmt.Fprintf(os.Stderr, "%s: %d -> %d bytes (%.1f%%)\n", name, read, written, ratio)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `zxc: parallel block compression.

Compresses each named file into <file>%s and removes the original,
or decompresses <file>%s back. With no files (or "-"), filters
stdin to stdout.

Usage:
  zxc [flags] [files...]

Examples:
  # Compress a file with defaults (zstd, level 3, all CPUs)
  zxc data.bin

  # Decompress, keeping the input
  zxc -d -k data.bin.xc

  # Best ratio, 8 workers, integrity trailer, through a pipe
  tar cf - src/ | zxc -5 -T 8 -C > src.tar.xc

  # Benchmark codecs against a sample file
  zxc -b --codec s2 sample.bin

Flags:
`, suffix, suffix)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
