package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leofalp/editdecode/core/decode"
	"github.com/leofalp/editdecode/core/normalize"
	"github.com/leofalp/editdecode/core/validate"
	"github.com/leofalp/editdecode/internal/utils"
	"github.com/leofalp/editdecode/providers/observability"
)

type decodeFlags struct {
	trace     bool
	normalize bool
	noRepair  bool
	maxText   int
}

// errorReport is the JSON shape printed for a failed decode.
type errorReport struct {
	Error         string `json:"error"`
	Kind          string `json:"kind"`
	Attempts      int    `json:"attempts"`
	Path          string `json:"path,omitempty"`
	Found         string `json:"found,omitempty"`
	Reason        string `json:"reason,omitempty"`
	ParseMessage  string `json:"parseMessage,omitempty"`
	AttemptedText string `json:"attemptedText,omitempty"`
}

func newDecodeCmd(a *app) *cobra.Command {
	f := &decodeFlags{}
	cmd := &cobra.Command{
		Use:   "decode [file|-]",
		Short: "Decode a raw model response into a validated review",
		Long: "Decode reads raw model output, recovers the review JSON and prints it " +
			"indented. On failure it prints the typed error and exits with status 1.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDecode(cmd, args, f)
		},
	}
	cmd.Flags().BoolVar(&f.trace, "trace", false, "print every sanitizer step and attempt to stderr")
	cmd.Flags().BoolVar(&f.normalize, "normalize", false, "default missing categories and trim fields (also EDITDECODE_NORMALIZE)")
	cmd.Flags().BoolVar(&f.noRepair, "no-library-repair", false, "skip the jsonrepair fallback of the aggressive pass")
	cmd.Flags().IntVar(&f.maxText, "max-attempted-text", 0, "runes of sanitized text kept in unparseable errors (default from config)")
	a.addFromHTMLFlag(cmd)
	return cmd
}

func (a *app) runDecode(cmd *cobra.Command, args []string, f *decodeFlags) error {
	raw, err := a.readInput(cmd, args)
	if err != nil {
		return err
	}

	maxText := a.cfg.MaxAttemptedText
	if f.maxText > 0 {
		maxText = f.maxText
	}
	opts := []decode.Option{
		decode.WithMaxAttemptedText(maxText),
		decode.WithLibraryRepair(a.cfg.LibraryRepair && !f.noRepair),
	}
	if a.cfg.Normalize || f.normalize {
		opts = append(opts, decode.WithNormalizer(normalize.Normalize))
	}

	var recorder *observability.Recorder
	if f.trace {
		recorder = observability.NewRecorder()
		opts = append(opts, decode.WithObserver(recorder))
	} else {
		opts = append(opts, decode.WithObserver(a.observer))
	}

	result, err := decode.New(opts...).Decode(cmd.Context(), raw)
	if recorder != nil {
		writeTrace(cmd, recorder.Entries())
	}

	out := cmd.OutOrStdout()
	if err != nil {
		var de *decode.DecodeError
		if !errors.As(err, &de) {
			return err
		}
		report := errorReport{
			Error:         de.Error(),
			Kind:          de.Kind.String(),
			Attempts:      de.Attempts,
			Path:          de.Path,
			Reason:        de.Reason,
			ParseMessage:  de.ParseMessage,
			AttemptedText: de.AttemptedText,
		}
		if de.Kind == decode.KindSchemaInvalid {
			report.Found = validate.Describe(de.Found)
		}
		fmt.Fprintln(out, utils.JSONToString(report, true))
		return err
	}

	fmt.Fprintln(out, utils.JSONToString(result, true))
	return nil
}

// writeTrace prints one line per recorded observation:
// "<kind> <name> {attrs}".
func writeTrace(cmd *cobra.Command, entries []observability.Entry) {
	w := cmd.ErrOrStderr()
	for _, e := range entries {
		var b strings.Builder
		b.WriteString(e.Kind)
		if e.Level != "" {
			b.WriteString(" " + e.Level)
		}
		b.WriteString(" " + e.Name)
		if e.Kind == "counter" || e.Kind == "histogram" {
			fmt.Fprintf(&b, " %g", e.Value)
		}
		if len(e.Attrs) > 0 {
			attrs := make(map[string]any, len(e.Attrs))
			for _, attr := range e.Attrs {
				attrs[attr.Key] = attr.Value
			}
			b.WriteString(" " + utils.JSONToString(attrs))
		}
		fmt.Fprintln(w, b.String())
	}
}
