package main

import (
	"CheckHash/internal/config"
	"CheckHash/internal/logging"
	"CheckHash/internal/metrics"
	"CheckHash/internal/report"
	"CheckHash/internal/verify"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitUsage    = 2
	exitFailed   = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("checkhash", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "usage: checkhash [flags] [FILE [HASH]]\n\n"+
			"Reads HASH from stdin when it is not given. The algorithm follows the hash length:\n"+
			"32=MD5 40=SHA-1 64=SHA-256 128=SHA-512.\n\n")
		fs.PrintDefaults()
	}

	var (
		file       string
		hash       string
		lang       string
		format     string
		color      string
		chunk      int
		stats      bool
		configPath string
		logLevel   string
		logFormat  string
		about      bool
	)

	fs.StringVar(&file, "file", "", "file to check")
	fs.StringVar(&hash, "hash", "", "published checksum (hex)")
	fs.StringVar(&lang, "lang", "", "report language (sv, en)")
	fs.StringVar(&format, "format", "", "report format (text, json)")
	fs.StringVar(&color, "color", "", "colored output (auto, always, never)")
	fs.IntVar(&chunk, "chunk", 0, "read chunk size in bytes")
	fs.BoolVar(&stats, "stats", false, "print timing and throughput to stderr")
	fs.StringVar(&configPath, "config", "", "path to YAML config (default ~/"+config.DefaultFile+")")
	fs.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", "", "log format (text, json)")
	fs.BoolVar(&about, "about", false, "print information about checkhash")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lang":
			cfg.Lang = lang
		case "format":
			cfg.Format = format
		case "color":
			cfg.Color = color
		case "chunk":
			cfg.ChunkSize = chunk
		case "stats":
			cfg.Stats = stats
		case "log-level":
			cfg.Log.Level = logLevel
		case "log-format":
			cfg.Log.Format = logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}

	logger := logging.Component(logging.Setup(stderr, logging.Config{
		Format: cfg.Log.Format,
		Level:  cfg.Log.Level,
	}), "checkhash")

	if about {
		_, _ = io.WriteString(stdout, report.About(cfg.Lang))
		return exitOK
	}

	rest := fs.Args()
	if len(rest) > 2 {
		fs.Usage()
		return exitUsage
	}
	if file == "" && len(rest) > 0 {
		file, rest = rest[0], rest[1:]
	}
	if hash == "" && len(rest) > 0 {
		hash, rest = rest[0], rest[1:]
	}
	if len(rest) > 0 {
		fs.Usage()
		return exitUsage
	}

	if hash == "" && file != "" {
		if isTerminal(stdin) {
			_, _ = fmt.Fprintln(stderr, report.Prompt(cfg.Lang))
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "Error: read hash:", err)
			return exitUsage
		}
		hash = string(data)
	}

	st := &metrics.Stats{}
	st.Start()
	r := verify.VerifyWith(file, hash, verify.Options{ChunkSize: cfg.ChunkSize})
	st.Stop()
	st.BytesHashed = r.BytesRead

	attrs := []any{
		"path", r.Path,
		"algorithm", r.Algorithm.String(),
		"outcome", r.Outcome.String(),
		"bytes", r.BytesRead,
		"duration", st.Duration(),
	}
	if r.Err != nil {
		logger.Warn("verification failed", append(attrs, "error", r.Err)...)
	} else {
		logger.Info("verification finished", attrs...)
	}

	opts := report.Options{
		Lang:   cfg.Lang,
		Format: cfg.Format,
		Color:  useColor(cfg, stdout),
	}
	if err := report.Render(stdout, r, opts); err != nil {
		logger.Error("render report", "error", err)
		return exitFailed
	}

	if cfg.Stats {
		if err := metrics.Print(stderr, st); err != nil {
			logger.Error("print stats", "error", err)
		}
	}

	switch r.Outcome {
	case verify.Match:
		return exitOK
	case verify.Mismatch:
		return exitMismatch
	default:
		return exitFailed
	}
}

func useColor(cfg config.Config, stdout io.Writer) bool {
	switch strings.ToLower(cfg.Color) {
	case "always":
		return true
	case "never":
		return false
	default:
		return strings.EqualFold(cfg.Format, "text") && isTerminal(stdout)
	}
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
