package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/rawbytedev/eztr"
	"github.com/rawbytedev/eztr/pkg/msgarchive"
	"github.com/rawbytedev/eztr/pkg/msgbuf"
	"github.com/rawbytedev/eztr/pkg/msgtable"
)

type config struct {
	tables   []string
	archive  string
	mode     printMode
	ids      []uint16
	asJSON   bool
	asYAML   bool
	mod      string
	out      string
	zstd     bool
	dump     eztr.DumpMode
	color    bool
	verbose  bool
	browse   bool
	category string
}

func main() {
	var (
		tables   = flag.String("table", "", "YAML message tables (comma-separated)")
		archive  = flag.String("archive", "", "Message archive to load")
		mode     = flag.String("mode", "print", "Output: print, full, ccode, full-ccode")
		ids      = flag.String("id", "", "Only these text ids (comma-separated, 0x prefix for hex)")
		asJSON   = flag.Bool("json", false, "Print messages as JSON")
		asYAML   = flag.Bool("yaml", false, "Print messages as a YAML table")
		mod      = flag.String("mod", "eztrdump", "Mod name of the -yaml table")
		out      = flag.String("o", "", "Write the messages to this archive")
		zstd     = flag.Bool("zstd", false, "Compress the -o archive")
		dump     = flag.String("dump", "off", "Load every message through the registry dump: off, on, full")
		category = flag.String("category", eztr.DefaultCategory, "Category label of -dump output")
		verbose  = flag.Bool("v", false, "Log registry activity to stderr")
		browse   = flag.Bool("i", false, "Interactive mode with TUI")
		memprof  = flag.String("memprofile", "", "Write a heap profile to this file on exit")
	)
	flag.Parse()

	if *tables == "" && *archive == "" {
		fmt.Fprintln(os.Stderr, "Usage: eztrdump -table a.yaml[,b.yaml] [-archive msgs.eztr] [-mode print|full|ccode|full-ccode]")
		fmt.Fprintln(os.Stderr, "       eztrdump -table a.yaml -o msgs.eztr [-zstd]")
		fmt.Fprintln(os.Stderr, "       eztrdump -archive msgs.eztr -json | -yaml | -i")
		os.Exit(1)
	}

	cfg := config{
		archive:  *archive,
		asJSON:   *asJSON,
		asYAML:   *asYAML,
		mod:      *mod,
		out:      *out,
		zstd:     *zstd,
		category: *category,
		verbose:  *verbose,
		browse:   *browse,
		color:    term.IsTerminal(int(os.Stdout.Fd())),
	}
	if *tables != "" {
		cfg.tables = strings.Split(*tables, ",")
	}
	var err error
	if cfg.mode, err = parseMode(*mode); err != nil {
		fail(err)
	}
	if cfg.dump, err = parseDumpMode(*dump); err != nil {
		fail(err)
	}
	if cfg.ids, err = parseIDs(*ids); err != nil {
		fail(err)
	}
	if cfg.browse && !term.IsTerminal(int(os.Stdin.Fd())) {
		fail(fmt.Errorf("interactive mode needs a terminal"))
	}

	if err := run(cfg, os.Stdout); err != nil {
		fail(err)
	}
	if *memprof != "" {
		if err := writeHeapProfile(*memprof); err != nil {
			fail(err)
		}
	}
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return pprof.WriteHeapProfile(f)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func parseIDs(s string) ([]uint16, error) {
	if s == "" {
		return nil, nil
	}
	var ids []uint16
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 0, 16)
		if err != nil {
			return nil, fmt.Errorf("text id %q: %w", f, err)
		}
		ids = append(ids, uint16(v))
	}
	return ids, nil
}

func parseDumpMode(s string) (eztr.DumpMode, error) {
	for _, m := range []eztr.DumpMode{eztr.DumpOff, eztr.DumpOn, eztr.DumpFull} {
		if m.String() == s {
			return m, nil
		}
	}
	return eztr.DumpOff, fmt.Errorf("unknown dump mode %q", s)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(eztr.VerboseLevel)
	return cfg.Build()
}

func run(cfg config, stdout io.Writer) error {
	log, err := newLogger(cfg.verbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()
	eztr.SetLogger(log)
	msgtable.SetLogger(log.Named("msgtable"))
	msgarchive.SetLogger(log.Named("msgarchive"))

	r := eztr.New(eztr.Options{
		Logger:   log,
		DumpMode: cfg.dump,
		Category: cfg.category,
		Output:   stdout,
	})
	if err := declare(r, cfg); err != nil {
		return err
	}
	if err := r.Init(); err != nil {
		return err
	}

	entries := selectEntries(msgarchive.FromRegistry(r), cfg.ids)
	defer msgarchive.Release(entries)

	if cfg.dump != eztr.DumpOff {
		for _, e := range entries {
			if buf, ok := r.Load(e.TextID, nil); ok {
				msgbuf.Destroy(buf)
			}
		}
		return nil
	}

	switch {
	case cfg.out != "":
		return writeArchive(cfg.out, entries, cfg.zstd)
	case cfg.asYAML:
		return msgtable.FromRegistry(r, cfg.mod).Encode(stdout)
	case cfg.asJSON:
		return writeJSON(stdout, entries)
	case cfg.browse:
		return runBrowser(entries, cfg.mode)
	}
	return writeEntries(stdout, entries, cfg.mode, cfg.color)
}

// declare queues the tables, then the archive. Table callbacks are stubs:
// the messages keep their stored form.
func declare(r *eztr.Registry, cfg config) error {
	for _, path := range cfg.tables {
		tb, err := msgtable.Load(path)
		if err != nil {
			return err
		}
		r.OnInit(tb.InitFunc(stubCallbacks(tb)))
	}
	if cfg.archive == "" {
		return nil
	}
	f, err := os.Open(cfg.archive)
	if err != nil {
		return err
	}
	defer f.Close()
	entries, err := msgarchive.Read(f)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.archive, err)
	}
	r.OnInit(func(r *eztr.Registry) {
		defer msgarchive.Release(entries)
		if err := msgarchive.Apply(r, entries); err != nil {
			msgarchive.Logger().Error("archive declaration failed", zap.String("path", cfg.archive), zap.Error(err))
		}
	})
	return nil
}

func stubCallbacks(tb *msgtable.Table) msgtable.Callbacks {
	cbs := msgtable.Callbacks{}
	for _, e := range tb.Messages {
		if e.Callback != "" {
			cbs[e.Callback] = func(*msgbuf.Buffer, uint16, any) {}
		}
	}
	return cbs
}

func selectEntries(entries []msgarchive.Entry, ids []uint16) []msgarchive.Entry {
	if len(ids) == 0 {
		return entries
	}
	keep := make(map[uint16]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	var out []msgarchive.Entry
	for _, e := range entries {
		if keep[e.TextID] {
			out = append(out, e)
		} else {
			msgbuf.Destroy(e.Buffer)
		}
	}
	return out
}

func writeArchive(path string, entries []msgarchive.Entry, compress bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := msgarchive.Write(f, entries, msgarchive.Options{Compress: compress}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type jsonEntry struct {
	TextID uint16 `json:"text_id"`
	msgbuf.View
}

func writeJSON(w io.Writer, entries []msgarchive.Entry) error {
	out := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, jsonEntry{TextID: e.TextID, View: e.Buffer.View()})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
