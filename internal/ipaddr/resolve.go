package ipaddr

// ResolveFirstHostAddress parses a subnet descriptor and returns its first
// host address in dotted-quad and IPv4-mapped IPv6 notation.
func ResolveFirstHostAddress(s string) (AddressPair, error) {
	d, err := ParseCIDR(s)
	if err != nil {
		return AddressPair{}, err
	}

	host := FirstHost(d)
	return AddressPair{
		IPv4: host.String(),
		IPv6: mapOctets(host),
	}, nil
}
