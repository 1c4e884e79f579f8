package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	sampleCIDRs = []string{
		"172.16.10.0/24",
		"172.16.10.0 255.255.255.0",
		"172.16.10.128/25",
		"192.168.1.216/30",
	}
	sampleIPv4s = []string{
		"172.16.10.1",
		"172.16.10.0/24",
		"172.16.10.0 255.255.255.0",
		"172.16.256.1",
		"1.1.1.-1",
	}
)

// demoCmd runs a fixed set of good and bad inputs through both operations.
// Failures are expected and do not change the exit status.
func demoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run sample subnets and addresses through the resolver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if err := writeResults(out, opts.output, "first host address", resolveAll(cmd, opts, sampleCIDRs)); err != nil {
				return err
			}
			if opts.output == outputTable {
				fmt.Fprintln(out)
			}
			return writeResults(out, opts.output, "ipv4-mapped ipv6 address", mapAll(cmd, opts, sampleIPv4s))
		},
	}
}
