package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/renholt/jsonmend"
	"github.com/renholt/jsonmend/core/special"
	"github.com/renholt/jsonmend/internal/jsonx"
)

func main() {
	var (
		noComments       bool
		noTrailingCommas bool
		noSingleQuotes   bool
		unquotedKeys     bool
		noNaN            bool
		noInfinity       bool
		keepBOM          bool
		indent           bool
		debug            bool
	)

	rootCmd := &cobra.Command{
		Use:   "jsonmend [file]",
		Short: "Mend almost-JSON into canonical JSON",
		Long: "jsonmend reads almost-JSON (single quotes, comments, trailing commas,\n" +
			"bare keys, NaN/Infinity, JSON wrapped in surrounding text) from a file or\n" +
			"stdin, repairs it, and writes canonical JSON to stdout.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := jsonmend.DefaultOptions()
			opts.AllowComments = !noComments
			opts.AllowTrailingCommas = !noTrailingCommas
			opts.AllowSingleQuotes = !noSingleQuotes
			opts.AllowUnquotedKeys = unquotedKeys
			opts.AllowNaN = !noNaN
			opts.AllowInfinity = !noInfinity
			opts.StripBOM = !keepBOM
			return run(args, opts, indent, debug)
		},
		SilenceUsage: true,
	}

	// A local .env (loaded by godotenv/autoload) can flip the defaults via
	// JSONMEND_* variables; flags still win.
	rootCmd.Flags().BoolVar(&noComments, "no-comments", envBool("JSONMEND_NO_COMMENTS"), "Do not strip // and /* */ comments")
	rootCmd.Flags().BoolVar(&noTrailingCommas, "no-trailing-commas", envBool("JSONMEND_NO_TRAILING_COMMAS"), "Do not remove trailing commas")
	rootCmd.Flags().BoolVar(&noSingleQuotes, "no-single-quotes", envBool("JSONMEND_NO_SINGLE_QUOTES"), "Do not convert single-quoted strings")
	rootCmd.Flags().BoolVar(&unquotedKeys, "unquoted-keys", envBool("JSONMEND_UNQUOTED_KEYS"), "Quote bare identifier keys")
	rootCmd.Flags().BoolVar(&noNaN, "no-nan", envBool("JSONMEND_NO_NAN"), "Reject bare NaN tokens")
	rootCmd.Flags().BoolVar(&noInfinity, "no-infinity", envBool("JSONMEND_NO_INFINITY"), "Reject bare Infinity tokens")
	rootCmd.Flags().BoolVar(&keepBOM, "keep-bom", envBool("JSONMEND_KEEP_BOM"), "Do not strip a leading byte order mark")
	rootCmd.Flags().BoolVar(&indent, "indent", false, "Pretty-print the output")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, opts jsonmend.Options, indent, debug bool) error {
	logger := newLogger(debug)

	reader, closeFunc, err := getInputReader(args)
	if err != nil {
		return err
	}
	defer func() { _ = closeFunc() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	logger.Debug("input read", slog.Int("bytes", len(data)))

	value, err := jsonmend.Parse(string(data), jsonmend.WithOptions(opts))
	if err != nil {
		return err
	}

	// Conformant encoders reject non-finite floats, so restored NaN/±Inf go
	// back to their sentinel strings on the way out.
	var out []byte
	if indent {
		out, err = jsonx.MarshalIndent(definite(value), "", "  ")
	} else {
		out, err = jsonx.Marshal(definite(value))
	}
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

// getInputReader resolves the input source: an explicit file argument, "-"
// for stdin, or piped stdin when no argument is given.
func getInputReader(args []string) (io.Reader, func() error, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() error { return nil }, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", args[0], err)
	}
	return f, f.Close, nil
}

// definite rebuilds a value tree with non-finite floats replaced by their
// sentinel strings so the tree can be marshaled by a conformant encoder.
func definite(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = definite(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = definite(val)
		}
		return out
	case float64:
		switch {
		case math.IsNaN(t):
			return special.NaNSentinel
		case math.IsInf(t, 1):
			return special.PosInfSentinel
		case math.IsInf(t, -1):
			return special.NegInfSentinel
		}
		return t
	default:
		return v
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// envBool reads an environment toggle; unset or unparsable means false.
func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
