package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/ardeearam/coins-ph-go/exchange/coins"
	"github.com/spf13/cobra"
)

func newRoutesCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the supported coins.ph operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			au := c.aurora()
			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "OPERATION\tMETHOD\tPATH\tFIELD")

			for _, name := range coins.RouteNames() {
				r := coins.Routes[name]

				path := r.Version + "/" + r.Path + "/"
				if r.IDParam != "" {
					path = r.Version + "/" + r.Path + "/{" + r.IDParam + "}/"
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", au.Bold(au.Cyan(name)), r.Method, path, r.ResponseField)
			}

			return w.Flush()
		},
	}
}
