package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leofalp/editdecode/core/validate"
)

func newSchemaCmd(_ *app) *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the review model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := validate.Schema()
			if err != nil {
				return err
			}
			data, err := s.JSON(!compact)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "print the schema on a single line")
	return cmd
}
