package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leofalp/editdecode/core/validate"
	"github.com/leofalp/editdecode/providers/observability"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file|-]",
		Short: "Check a strict JSON document against the review schema",
		Long: "Check validates a document without any repair: first against the " +
			"generated JSON Schema, then with the structural validator that also " +
			"enforces id uniqueness, position ranges and issue counts.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if err := validate.CheckSchema(doc); err != nil {
				var schemaErr *validate.SchemaError
				if errors.As(err, &schemaErr) {
					for _, fe := range schemaErr.Errors {
						fmt.Fprintf(out, "schema: %s: %s\n", fe.Field, fe.Message)
					}
				}
				return err
			}

			dec := json.NewDecoder(strings.NewReader(doc))
			dec.UseNumber()
			var value any
			if err := dec.Decode(&value); err != nil {
				return fmt.Errorf("parse document: %w", err)
			}
			result, err := validate.Validate(value)
			if err != nil {
				fmt.Fprintf(out, "model: %v\n", err)
				return err
			}

			changes := 0
			for _, p := range result.ReviewContent {
				changes += len(p.Changes)
			}
			a.observer.Debug(cmd.Context(), "Document checked",
				observability.Int(observability.AttrDecodeParagraphs, len(result.ReviewContent)),
				observability.Int(observability.AttrDecodeChanges, changes))
			fmt.Fprintf(out, "ok: %d paragraphs, %d changes\n", len(result.ReviewContent), changes)
			return nil
		},
	}
}
