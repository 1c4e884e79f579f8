package ipaddr

import "go4.org/netipx"

// FirstHost returns the first host address of the subnet. With an explicit
// prefix the network address itself is skipped (offset 1); a bare address is
// its own single-host range (offset 0). The offset is applied the same way to
// /31 and /32; on an explicit /32 the window is clamped to the one address the
// range holds.
func FirstHost(d SubnetDescriptor) Octets {
	r := netipx.RangeOfPrefix(d.Prefix())

	if !d.HasExplicitPrefix {
		return r.From().As4()
	}

	first := r.From().Next()
	if !first.IsValid() || !r.Contains(first) {
		return r.To().As4()
	}
	return first.As4()
}
