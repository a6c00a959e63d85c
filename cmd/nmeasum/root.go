package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"nmeasum/internal/config"
	"nmeasum/internal/logging"
	"nmeasum/internal/nmea"
	"nmeasum/internal/selftest"
)

var exampleUsage = strings.TrimSpace(`
  nmeasum '$GPRMC,162254.00,A,3723.02837,N,12159.39853,W,0.820,188.36,110706,,,A*'
  nmeasum --frame 'PSRF100,0,9600,8,1,0'
  nmeasum --file sentences.txt --format json
  nmeasum selftest
`)

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfgPath   string
	logLevel  string
	logFormat string

	file   string
	format string
	frame  bool

	cfg config.Config
	log zerolog.Logger

	vectors func() []selftest.Vector
}

// maxLineBytes caps a single --file line.
const maxLineBytes = 16 << 20

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		log:     zerolog.Nop(),
		vectors: selftest.Vectors,
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return newApp(stdin, stdout, stderr).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nmeasum [sentence...]",
		Args:          cobra.ArbitraryArgs,
		Short:         "Compute NMEA-0183 sentence checksums",
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runChecksum(cmd.Context(), args)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "Path to YAML config")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: auto, console, json")

	f := root.Flags()
	f.StringVarP(&a.file, "file", "f", "", "Read sentences from file, one per line up to 16 MiB ('-' for stdin)")
	f.StringVar(&a.format, "format", "", "Output format: text, json")
	f.BoolVar(&a.frame, "frame", false, "Print the rebuilt $...*HH sentence")

	root.AddCommand(newSelfTestCmd(a))
	return root
}

// setup loads the config file, then lets explicitly set flags override it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgPath != "" {
		loaded, err := config.Load(a.cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if changed["log-level"] {
		cfg.Log.Level = a.logLevel
	}
	if changed["log-format"] {
		cfg.Log.Format = a.logFormat
	}
	if changed["format"] {
		cfg.Output.Format = a.format
	}
	if changed["frame"] {
		cfg.Output.Frame = a.frame
	}
	if changed["verbose"] {
		v, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		cfg.SelfTest.Verbose = &v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log, a.stderr)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	a.log.Debug().Str("config", a.cfgPath).Interface("settings", cfg).Msg("configuration")
	return nil
}

type checksumRecord struct {
	Sentence string        `json:"sentence"`
	Checksum nmea.Checksum `json:"checksum"`
	Framed   string        `json:"framed,omitempty"`
}

func (a *app) runChecksum(ctx context.Context, args []string) error {
	if a.file != "" && len(args) > 0 {
		return fmt.Errorf("sentences given both as arguments and with --file")
	}

	emit := a.emitter()
	if a.file == "" {
		if len(args) == 0 {
			return fmt.Errorf("no sentences: pass them as arguments or use --file")
		}
		for _, s := range args {
			if err := emit(s); err != nil {
				return err
			}
		}
		a.log.Debug().Int("sentences", len(args)).Msg("checksums computed")
		return nil
	}

	r := a.stdin
	if a.file != "-" {
		f, err := os.Open(a.file)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	n, err := forEachLine(ctx, r, emit)
	if err != nil {
		return fmt.Errorf("read %s: %w", a.file, err)
	}
	a.log.Debug().Str("file", a.file).Int("sentences", n).Msg("checksums computed")
	return nil
}

func (a *app) emitter() func(string) error {
	if a.cfg.Output.Format == "json" {
		enc := json.NewEncoder(a.stdout)
		enc.SetEscapeHTML(false)
		return func(s string) error {
			rec := checksumRecord{Sentence: s, Checksum: nmea.ComputeString(s)}
			if a.cfg.Output.Frame {
				rec.Framed = string(nmea.Frame([]byte(s)))
			}
			return enc.Encode(rec)
		}
	}
	return func(s string) error {
		var err error
		if a.cfg.Output.Frame {
			_, err = fmt.Fprintf(a.stdout, "%s\n", nmea.Frame([]byte(s)))
		} else {
			_, err = fmt.Fprintf(a.stdout, "%s\t%s\n", nmea.ComputeString(s), s)
		}
		return err
	}
}

// forEachLine calls fn for every non-empty line of r. Line endings (LF or
// CRLF) are not passed to fn. Cancelling ctx returns immediately even while a
// read is blocked; the reading goroutine exits once that read returns.
func forEachLine(ctx context.Context, r io.Reader, fn func(string) error) (int, error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-stop:
				return
			}
		}
		errc <- sc.Err()
	}()

	n := 0
	for {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return n, err
				}
				return n, ctx.Err()
			}
			if line == "" {
				continue
			}
			if err := fn(line); err != nil {
				return n, err
			}
			n++
		}
	}
}
