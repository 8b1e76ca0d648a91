package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/stylo/internal/app"
	"github.com/chriscorrea/stylo/internal/cleanup"
	"github.com/chriscorrea/stylo/internal/gender"

	"github.com/spf13/cobra"
)

// envOr returns the environment variable key, or fallback when it is unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	flags := cmd.Flags()
	formatFlag, _ := flags.GetString("format")
	jsonFlag, _ := flags.GetBool("json")
	textFlag, _ := flags.GetBool("text")
	selector, _ := flags.GetString("selector")
	includeAll, _ := flags.GetBool("include-all")
	strip, _ := flags.GetBool("strip-boilerplate")
	quiet, _ := flags.GetBool("quiet")
	debug, _ := flags.GetBool("debug")

	// determine output format
	var outputFormat app.OutputFormat
	switch {
	case jsonFlag:
		outputFormat = app.JSON
	case textFlag:
		outputFormat = app.Text
	default:
		var err error
		if outputFormat, err = app.ParseOutputFormat(formatFlag); err != nil {
			return app.Config{}, err
		}
	}

	// no arguments reads stdin
	sources := args
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	cfg := app.Config{
		Sources:          sources,
		Selector:         selector,
		IncludeAll:       includeAll,
		StripBoilerplate: strip,
		OutputFormat:     outputFormat,
		Quiet:            quiet,
		Debug:            debug,
	}

	// subcommand flags are only defined where they apply
	if flags.Lookup("pos") != nil {
		cfg.PartOfSpeech, _ = flags.GetBool("pos")
	}
	if flags.Lookup("top") != nil {
		cfg.Top, _ = flags.GetInt("top")
	}
	if flags.Lookup("female-names") != nil {
		files := gender.LoadFiles{}
		files.FeminineNames, _ = flags.GetString("female-names")
		files.MasculineNames, _ = flags.GetString("male-names")
		files.FeminineMarkers, _ = flags.GetString("female-markers")
		files.MasculineMarkers, _ = flags.GetString("male-markers")
		lexiconDir, _ := flags.GetString("lexicon-dir")
		cfg.Lexicon = app.ResolveLexiconFiles(lexiconDir, files)
	}
	if flags.Lookup("delimiters") != nil {
		cfg.DelimiterFile, _ = flags.GetString("delimiters")
		cfg.Delimiters, _ = flags.GetStringArray("delimiter")
		cfg.SkipPreamble, _ = flags.GetBool("skip-preamble")
	}

	return cfg, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// openOutput returns the --output file, or stdout when none is given.
func openOutput(cmd *cobra.Command) (io.WriteCloser, error) {
	path, _ := cmd.Flags().GetString("output")
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

type runFunc func(ctx context.Context, cfg app.Config, w io.Writer) error

// analysisCommand wraps one of the app.Run functions with config building, logging,
// signal handling and output.
func analysisCommand(name string, run runFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		setupLogger(config.Debug)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		out, err := openOutput(cmd)
		if err != nil {
			return err
		}

		if err := run(ctx, config, out); err != nil {
			out.Close()
			return fmt.Errorf("%s failed: %w", name, err)
		}
		return out.Close()
	}
}

var rootCmd = &cobra.Command{
	Use:   "stylo",
	Short: "Stylometric metrics for plain-text and HTML novels",
	Long: `Stylo measures the style of novels: lexical metrics, gender attribution of the
narrative, and the most distinctive terms of each section.

Sources may be files, directories of .txt/.html files, URLs, or standard input.

Examples:
  stylo basic corpus/novels --pos
  stylo gender corpus/novels --female-names names/female.txt --male-names names/male.txt
  stylo tfidf 1929-02_The_Sound_and_the_Fury.txt --delimiters sound-and-fury.txt
  stylo clean 1926-01_Soldiers_Pay.txt -o cleaned.txt`,
	SilenceUsage: true,
}

var basicCmd = &cobra.Command{
	Use:   "basic [sources...]",
	Short: "Word, sentence and vocabulary metrics",
	RunE:  analysisCommand("basic", app.RunBasic),
}

var genderCmd = &cobra.Command{
	Use:   "gender [sources...]",
	Short: "Share of text attributed to feminine and masculine markers",
	RunE:  analysisCommand("gender", app.RunGender),
}

var tfidfCmd = &cobra.Command{
	Use:   "tfidf [sources...]",
	Short: "Highest weighted TF-IDF terms per section",
	RunE:  analysisCommand("tfidf", app.RunTFIDF),
}

var cleanCmd = &cobra.Command{
	Use:   "clean SOURCE",
	Short: "Remove page numbers, running heads and repeated blank lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		setupLogger(debug)

		titleWords, _ := cmd.Flags().GetString("title-words")
		strip, _ := cmd.Flags().GetBool("strip-boilerplate")
		selector, _ := cmd.Flags().GetString("selector")
		includeAll, _ := cmd.Flags().GetBool("include-all")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		out, err := openOutput(cmd)
		if err != nil {
			return err
		}

		cfg := app.CleanConfig{
			Source:           args[0],
			TitleWords:       cleanup.ParseTitleWords(titleWords),
			StripBoilerplate: strip,
			Selector:         selector,
			IncludeAll:       includeAll,
		}
		if err := app.RunClean(ctx, cfg, out); err != nil {
			out.Close()
			return fmt.Errorf("clean failed: %w", err)
		}
		return out.Close()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()

	// output flags
	pf.String("format", "csv", "Output format: csv, json or text")
	pf.Bool("json", false, "Output in JSON format")
	pf.Bool("text", false, "Output a human-readable listing")
	pf.StringP("output", "o", "", "Write output to a file instead of stdout")

	// source flags
	pf.StringP("selector", "s", "", "CSS selector for HTML sources")
	pf.BoolP("include-all", "i", false, "Keep the whole HTML body without readability extraction")
	pf.Bool("strip-boilerplate", false, "Remove e-text front and back matter before analysis")

	// other flags
	pf.BoolP("quiet", "q", false, "Suppress progress and warnings")
	pf.BoolP("debug", "D", false, "Enable debug logging")
	_ = pf.MarkHidden("debug")

	// output format flags are mutually exclusive
	rootCmd.MarkFlagsMutuallyExclusive("format", "json", "text")

	basicCmd.Flags().Bool("pos", false, "Compute part-of-speech percentages (slower)")
	basicCmd.Flags().Int("top", app.DefaultTopWords, "Number of most frequent words to list")

	genderCmd.Flags().String("female-names", "", "File of feminine character names, one per line")
	genderCmd.Flags().String("male-names", "", "File of masculine character names, one per line")
	genderCmd.Flags().String("female-markers", "", "File replacing the default feminine markers")
	genderCmd.Flags().String("male-markers", "", "File replacing the default masculine markers")
	genderCmd.Flags().String("lexicon-dir", envOr("STYLO_LEXICON_DIR", ""),
		"Directory holding female-names.txt, male-names.txt and marker files (env STYLO_LEXICON_DIR)")

	tfidfCmd.Flags().String("delimiters", "", "File of section delimiter lines (LABEL or LABEL|Alias)")
	tfidfCmd.Flags().StringArray("delimiter", nil, "Section delimiter line (repeatable)")
	tfidfCmd.Flags().Int("top", app.DefaultTopTerms, "Number of terms to rank per section")
	tfidfCmd.Flags().Bool("skip-preamble", false, "Leave text before the first delimiter out of the weighting")

	cleanCmd.Flags().String("title-words", "", "Comma-separated words of the running head (default: from the title)")

	rootCmd.AddCommand(basicCmd, genderCmd, tfidfCmd, cleanCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
