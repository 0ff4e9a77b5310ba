package main

import (
	"fmt"
	"io"
	"os"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/spf13/cobra"

	"github.com/leofalp/editdecode/internal/config"
	"github.com/leofalp/editdecode/providers/observability/slogobs"
)

// app holds the state shared by all subcommands once the root command's
// PersistentPreRunE has run.
type app struct {
	envFile   string
	logLevel  string
	logFormat string
	fromHTML  bool

	cfg      config.Config
	observer *slogobs.Observer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "editdecode",
		Short: "Tolerant decoder for LLM document-review responses",
		Long: "editdecode recovers a validated document review from raw model output: " +
			"it extracts the JSON object, repairs common syntax damage in two passes " +
			"and checks the result against the review model.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "optional .env file to load")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error); overrides "+slogobs.EnvLogLevel)
	flags.StringVar(&a.logFormat, "log-format", "", "log format (compact, pretty, json); overrides "+slogobs.EnvLogFormat)

	root.AddCommand(
		newDecodeCmd(a),
		newSanitizeCmd(a),
		newSchemaCmd(a),
		newCheckCmd(a),
	)
	return root
}

// setup loads the configuration, applies flag overrides and builds the
// observer that writes to the command's stderr.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		level, ok := slogobs.LookupLogLevel(a.logLevel)
		if !ok {
			return fmt.Errorf("unknown log level %q", a.logLevel)
		}
		cfg.LogLevel = level
	}
	if a.logFormat != "" {
		format, ok := slogobs.LookupFormat(a.logFormat)
		if !ok {
			return fmt.Errorf("unknown log format %q", a.logFormat)
		}
		cfg.LogFormat = format
	}

	a.cfg = cfg
	a.observer = slogobs.New(
		slogobs.WithFormat(cfg.LogFormat),
		slogobs.WithLevel(cfg.LogLevel),
		slogobs.WithOutput(cmd.ErrOrStderr()),
	)
	return nil
}

// addFromHTMLFlag registers --from-html on commands that accept raw responses.
func (a *app) addFromHTMLFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&a.fromHTML, "from-html", false,
		"treat the input as an HTML page (e.g. a saved chat transcript) and convert it to Markdown first")
}

// readInput returns the contents of the file named by args[0], or stdin
// when no argument or "-" is given. With --from-html the content is
// converted to Markdown, which turns <pre><code> blocks into fenced blocks
// and decodes entities such as &quot;.
func (a *app) readInput(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
	}
	if !a.fromHTML {
		return string(data), nil
	}
	markdown, err := htmltomarkdown.ConvertString(string(data))
	if err != nil {
		return "", fmt.Errorf("convert HTML input: %w", err)
	}
	return markdown, nil
}
