package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func mapCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "map <ipv4>...",
		Short:   "Print the IPv4-mapped IPv6 form of each IPv4 address",
		Example: "  ipaddr map 10.10.10.1",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := mapAll(cmd, opts, args)
			if err := writeResults(cmd.OutOrStdout(), opts.output, "ipv4-mapped ipv6 address", results); err != nil {
				return err
			}
			if n := countFailed(results); n > 0 {
				return fmt.Errorf("%d of %d addresses could not be mapped", n, len(results))
			}
			return nil
		},
	}
}

func mapAll(cmd *cobra.Command, opts *options, addrs []string) []result {
	results := make([]result, 0, len(addrs))
	for _, addr := range addrs {
		mapped, err := opts.service.IPv4MappedIPv6Address(cmd.Context(), addr)
		if err != nil {
			results = append(results, result{Input: addr, Error: err.Error()})
			continue
		}
		ipv4 := addr
		results = append(results, result{Input: addr, IPv4: &ipv4, IPv6: &mapped})
	}
	return results
}
