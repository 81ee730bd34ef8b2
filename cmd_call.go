package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ardeearam/coins-ph-go/exchange/coins"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCallCommand(c *cli) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "call <operation> [param=value ...]",
		Short: "Call a coins.ph operation and print its payload",
		Long: "Call runs one registered coins.ph operation (see `coins routes`). Parameters are sent " +
			"as the query string; the resource id is also appended to the path. --data is " +
			"sent verbatim as the JSON body of POST and PUT operations.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			body, err := parseData(data)
			if err != nil {
				return err
			}

			ctx, cancel := c.signalContext()
			defer cancel()

			resp, err := c.client().Call(ctx, args[0], params, body)
			if err != nil {
				return err
			}

			return printJSON(c, resp.Payload())
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body")

	return cmd
}

// parseParams turns key=value arguments into call parameters.
func parseParams(args []string) (coins.Params, error) {
	if len(args) == 0 {
		return nil, nil
	}

	params := make(coins.Params, len(args))

	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("parameter %q is not of the form key=value", arg)
		}

		params[k] = v
	}

	return params, nil
}

// parseData validates a --data argument. The bytes are kept as given so that what is signed is
// exactly what was typed.
func parseData(data string) (json.RawMessage, error) {
	if data == "" {
		return nil, nil
	}

	if !json.Valid([]byte(data)) {
		return nil, errors.New("--data is not valid JSON")
	}

	return json.RawMessage(data), nil
}

func printJSON(c *cli, payload []byte) error {
	if len(payload) == 0 {
		return nil
	}

	var buf bytes.Buffer

	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		// Not JSON; print as received.
		_, err = fmt.Fprintln(c.out, string(payload))
		return err
	}

	_, err := fmt.Fprintln(c.out, buf.String())

	return err
}
