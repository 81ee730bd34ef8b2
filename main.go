package main

import (
	"fmt"
	"os"

	"github.com/ardeearam/coins-ph-go/exchange"
	"github.com/ardeearam/coins-ph-go/exchange/coins"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

func main() {
	c := newCli(os.Stdout, os.Stderr)

	if err := c.root.Execute(); err != nil {
		reportError(c, err)
		os.Exit(1)
	}
}

// reportError prints the failure in a form that makes the source obvious: coins.ph itself, the
// HTTP layer, or local configuration.
func reportError(c *cli, err error) {
	au := c.aurora()

	var apiErr *coins.APIError
	var httpErr *exchange.HTTPError
	var cfgErr *coins.ConfigError

	switch {
	case errors.As(err, &apiErr):
		fmt.Fprintf(c.errOut, "%s %s\n", au.Bold(au.Red("coins.ph rejected the request:")), apiErr.Message())
	case errors.As(err, &httpErr):
		fmt.Fprintf(c.errOut, "%s %s\n", au.Bold(au.Yellow(fmt.Sprintf("HTTP %d:", httpErr.StatusCode()))), err)
	case errors.As(err, &cfgErr):
		fmt.Fprintf(c.errOut, "%s %s (set --%s or COINS_%s)\n", au.Bold(au.Red("configuration error:")), err, cfgErr.Field, envName(cfgErr.Field))
	default:
		fmt.Fprintf(c.errOut, "%s %s\n", au.Bold(au.Red("error:")), err)
	}
}

// aurora returns a colouriser honouring --no-color.
func (c *cli) aurora() aurora.Aurora {
	return aurora.NewAurora(!c.v.GetBool("no-color"))
}
