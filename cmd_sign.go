package main

import (
	"fmt"

	"github.com/ardeearam/coins-ph-go/exchange/coins"
	"github.com/spf13/cobra"
)

func newSignCommand(c *cli) *cobra.Command {
	var url, data string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Print a fresh nonce and signature for a URL (and optional body)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := parseData(data)
			if err != nil {
				return err
			}

			env, err := coins.Sign(c.v.GetString("secret"), url, body)
			if err != nil {
				return err
			}

			au := c.aurora()

			fmt.Fprintf(c.out, "%s %s\n", au.Bold(coins.NonceHeader+":"), env.Nonce)
			fmt.Fprintf(c.out, "%s %s\n", au.Bold(coins.SignatureHeader+":"), env.Signature)

			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Complete request URL, including the query string")
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}
