// rowscan computes an aggregate over one numeric column of a delimited
// text file, optionally filtered by a key column or grouped by it.
//
// Examples:
//
//	rowscan --key 110 trades.csv
//	rowscan --key 110 --value-field 3 trades.csv.zst
//	rowscan --group measurements.csv
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/rowscan/rowscan/group"
	"github.com/rowscan/rowscan/scan"
	"github.com/rowscan/rowscan/source"
)

var (
	key           = pflag.String("key", "", "target key the filter field must equal")
	grouped       = pflag.Bool("group", false, "report min/avg/max/count per distinct key instead of one aggregate")
	delimiter     = pflag.String("delimiter", ",", "field separator (single byte)")
	filterField   = pflag.Int("filter-field", scan.DefaultFilterField, "zero-based index of the filter/key field")
	valueField    = pflag.Int("value-field", scan.DefaultValueField, "zero-based index of the numeric value field")
	chunkCapacity = pflag.Int("chunk-capacity", scan.DefaultChunkCapacity, "read buffer capacity in bytes")
	grow          = pflag.Bool("grow", false, "grow the buffer for records longer than the chunk capacity")
	skipHeader    = pflag.Bool("skip-header", false, "skip the first line of the file")
	verbose       = pflag.BoolP("verbose", "v", false, "enable debug logging")
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] FILE\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)

	if err := mainImpl(logger); err != nil {
		logger.Error("scan failed", "err", err)
		os.Exit(1)
	}
}

func mainImpl(logger *slog.Logger) error {
	if pflag.NArg() != 1 {
		pflag.Usage()
		return fmt.Errorf("expected exactly one input file, got %d", pflag.NArg())
	}
	if len(*delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single byte, got %q", *delimiter)
	}
	if !*grouped && *key == "" {
		return fmt.Errorf("--key is required unless --group is given")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	path := pflag.Arg(0)
	opts := []scan.Option{
		scan.WithContext(ctx),
		scan.WithDelimiter((*delimiter)[0]),
		scan.WithFilterField(*filterField),
		scan.WithValueField(*valueField),
		scan.WithChunkCapacity(*chunkCapacity),
	}
	if *grow {
		opts = append(opts, scan.WithBufferGrowth())
	}

	rc, err := source.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	var input io.Reader = rc
	if *skipHeader {
		br := bufio.NewReader(rc)
		if _, err := br.ReadString('\n'); err != nil {
			return fmt.Errorf("skipping header of %s: %w", path, err)
		}
		input = br
	}

	logger.Debug("scanning", "path", path, "compression", source.ForPath(path).String(),
		"chunk_capacity", *chunkCapacity, "grouped", *grouped)
	start := time.Now()

	if *grouped {
		stats, err := group.Aggregate(input, opts...)
		if err != nil {
			return err
		}
		logger.Debug("scan done", "keys", len(stats), "elapsed", time.Since(start))
		printGrouped(stats)

		return nil
	}

	result, err := scan.Aggregate(input, []byte(*key), opts...)
	if err != nil {
		return err
	}
	logger.Debug("scan done", "matched", result.Count, "elapsed", time.Since(start))
	fmt.Printf("sum=%g count=%d average=%g\n", result.Sum, result.Count, result.Average())

	return nil
}

func printGrouped(stats map[string]group.Stats) {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		st := stats[k]
		fmt.Printf("%s=%g/%g/%g (%d)\n", k, st.Min, st.Average(), st.Max, st.Count)
	}
}
