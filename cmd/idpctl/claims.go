package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kbukum/idprovider/claims"
)

func (c *cli) newClaimsCmd() *cobra.Command {
	var (
		extendFile  string
		addressFile string
		text        bool
	)

	cmd := &cobra.Command{
		Use:   "claims",
		Short: "Print the effective claim shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := c.effectiveShape(addressFile, extendFile)
			if err != nil {
				return err
			}
			if !text {
				return writeJSON(cmd.OutOrStdout(), shape)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CLAIM\tTYPE\tREQUIRED")
			writeShapeRows(tw, shape, "")
			fmt.Fprintf(tw, "*\t%s\tno\n", shape.OpenType())
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&extendFile, "extend", "", "JSON claim-shape extension for the profile")
	cmd.Flags().StringVar(&addressFile, "address", "", "JSON claim-shape extension for the address claim")
	cmd.Flags().BoolVar(&text, "text", false, "print a table instead of JSON")
	return cmd
}

func writeShapeRows(tw *tabwriter.Writer, s *claims.Shape, prefix string) {
	for _, f := range s.Fields() {
		required := "no"
		if f.Required {
			required = "yes"
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s\n", prefix, f.Name, f.Type, required)
		if f.Type == claims.Object {
			writeShapeRows(tw, f.Shape, prefix+f.Name+".")
		}
	}
}
