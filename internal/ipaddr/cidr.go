package ipaddr

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// UICIDRPattern is the CIDR pattern the task dialog validates input with.
// Everything it accepts, ParseCIDR accepts too.
const UICIDRPattern = `^(([0-9]|[1-9][0-9]|1[0-9][0-9]|2[0-4][0-9]|25[0-5])\.){3}(([0-9]|[1-9][0-9]|1[0-9][0-9]|2[0-4][0-9]|25[0-5]))[/]([0-9]|[1-2][0-9]|3[0-2])$`

// ParseCIDR parses "a.b.c.d/n" or a bare "a.b.c.d". A bare address is taken as
// an implicit /32.
func ParseCIDR(s string) (SubnetDescriptor, error) {
	addrPart, prefixPart, hasPrefix := strings.Cut(s, "/")

	octets, err := parseOctets(addrPart)
	if err != nil {
		return SubnetDescriptor{}, fmt.Errorf("%w: %q: %v", ErrInvalidCIDRFormat, s, err)
	}

	if !hasPrefix {
		return SubnetDescriptor{
			Address:      octets.Uint32(),
			PrefixLength: 32,
		}, nil
	}

	bits, err := parsePrefixLength(prefixPart)
	if err != nil {
		return SubnetDescriptor{}, fmt.Errorf("%w: %q: %v", ErrInvalidCIDRFormat, s, err)
	}

	return SubnetDescriptor{
		Address:           octets.Uint32(),
		PrefixLength:      bits,
		HasExplicitPrefix: true,
	}, nil
}

func parseOctets(s string) (Octets, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return Octets{}, err
	}
	if !addr.Is4() {
		return Octets{}, fmt.Errorf("not an ipv4 address")
	}
	return addr.As4(), nil
}

func parsePrefixLength(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty prefix length")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("prefix length %q is not a decimal number", s)
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("prefix length %q has leading zeros", s)
	}

	bits, err := strconv.Atoi(s)
	if err != nil || bits > 32 {
		return 0, fmt.Errorf("prefix length %q out of range [0,32]", s)
	}
	return bits, nil
}
