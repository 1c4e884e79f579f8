package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func firstCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "first <cidr>...",
		Short: "Print the first host address of each IPv4 subnet",
		Long: `Print the first host address of each IPv4 subnet in dotted-quad and
IPv4-mapped IPv6 notation. A bare address is treated as a /32 and printed as is.`,
		Example: "  ipaddr first 172.16.10.0/24 192.168.1.216/30",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := resolveAll(cmd, opts, args)
			if err := writeResults(cmd.OutOrStdout(), opts.output, "first host address", results); err != nil {
				return err
			}
			if n := countFailed(results); n > 0 {
				return fmt.Errorf("%d of %d subnets could not be resolved", n, len(results))
			}
			return nil
		},
	}
}

func resolveAll(cmd *cobra.Command, opts *options, cidrs []string) []result {
	results := make([]result, 0, len(cidrs))
	for _, cidr := range cidrs {
		pair, err := opts.service.FirstIPAddress(cmd.Context(), cidr)
		if err != nil {
			results = append(results, result{Input: cidr, Error: err.Error()})
			continue
		}
		results = append(results, result{Input: cidr, IPv4: &pair.IPv4, IPv6: &pair.IPv6})
	}
	return results
}
