package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/jsonrpc-go/pkg/client"
	"github.com/theapemachine/jsonrpc-go/pkg/transport"
)

var (
	asNotification bool
	namedParams    string

	callCmd = &cobra.Command{
		Use:   "call <method> [param...]",
		Short: "Invoke a method on the configured endpoint",
		Long:  longCall,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCall,
	}
)

func init() {
	callCmd.Flags().BoolVar(
		&asNotification,
		"notify",
		false,
		"send as a notification (no id, no correlated reply expected)",
	)

	callCmd.Flags().StringVar(
		&namedParams,
		"named",
		"",
		"named params as a JSON object, instead of positional params",
	)

	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	method := args[0]

	rpc := client.New(
		transport.NewHTTP(
			viper.GetString("endpoint"),
			transport.WithTimeout(viper.GetDuration("timeout")),
		),
		client.WithValidation(viper.GetBool("validate")),
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), viper.GetDuration("timeout"))
	defer cancel()

	result, err := dispatch(ctx, rpc, method, args[1:])

	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")

	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func dispatch(ctx context.Context, rpc *client.Client, method string, raw []string) (any, error) {
	if namedParams != "" {
		if len(raw) > 0 {
			return nil, fmt.Errorf("--named cannot be combined with positional params")
		}

		params := map[string]any{}

		if err := json.Unmarshal([]byte(namedParams), &params); err != nil {
			return nil, fmt.Errorf("--named must be a JSON object: %w", err)
		}

		if asNotification {
			return rpc.NotifyNamed(ctx, method, params)
		}

		return rpc.CallNamed(ctx, method, params)
	}

	params := make([]any, 0, len(raw))

	for _, arg := range raw {
		params = append(params, decodeParam(arg))
	}

	if asNotification {
		return rpc.Notify(ctx, method, params...)
	}

	return rpc.Call(ctx, method, params...)
}

// decodeParam treats each argument as JSON when it parses, and as a
// bare string otherwise, so `call add 3 5` works without quoting.
func decodeParam(arg string) any {
	var value any

	if err := json.Unmarshal([]byte(arg), &value); err != nil {
		return arg
	}

	return value
}

var longCall = `
Send a single JSON-RPC 2.0 request to the configured endpoint and print
the result member of the reply as JSON.

Positional params are parsed as JSON values where possible, falling
back to bare strings. Use --named to supply a params object instead.
`
