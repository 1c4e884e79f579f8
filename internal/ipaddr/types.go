package ipaddr

import (
	"encoding/binary"
	"net/netip"
	"strconv"
)

// Octets is the decomposed form of an IPv4 address, most significant first.
type Octets [4]uint8

func OctetsFromUint32(v uint32) Octets {
	var o Octets
	binary.BigEndian.PutUint32(o[:], v)
	return o
}

func (o Octets) Uint32() uint32 {
	return binary.BigEndian.Uint32(o[:])
}

func (o Octets) Addr() netip.Addr {
	return netip.AddrFrom4(o)
}

// Hextets splits the address into its high and low 16-bit groups.
func (o Octets) Hextets() (hi, lo uint16) {
	return binary.BigEndian.Uint16(o[0:2]), binary.BigEndian.Uint16(o[2:4])
}

func (o Octets) String() string {
	b := make([]byte, 0, len("255.255.255.255"))
	for i, v := range o {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(v), 10)
	}
	return string(b)
}

// SubnetDescriptor is a parsed IPv4 subnet. Address holds the dotted quad as
// written; it is not masked to the prefix.
type SubnetDescriptor struct {
	Address           uint32
	PrefixLength      int
	HasExplicitPrefix bool
}

func (d SubnetDescriptor) mask() uint32 {
	if d.PrefixLength <= 0 {
		return 0
	}
	return ^uint32(0) << (32 - d.PrefixLength)
}

func (d SubnetDescriptor) Network() uint32 {
	return d.Address & d.mask()
}

func (d SubnetDescriptor) Broadcast() uint32 {
	return d.Network() | ^d.mask()
}

func (d SubnetDescriptor) Prefix() netip.Prefix {
	return netip.PrefixFrom(OctetsFromUint32(d.Address).Addr(), d.PrefixLength).Masked()
}

func (d SubnetDescriptor) String() string {
	return OctetsFromUint32(d.Address).String() + "/" + strconv.Itoa(d.PrefixLength)
}

// AddressPair carries a first-host address in both notations. Both fields are
// empty when resolution failed.
type AddressPair struct {
	IPv4 string `json:"ipv4" yaml:"ipv4"`
	IPv6 string `json:"ipv6" yaml:"ipv6"`
}

func (p AddressPair) IsZero() bool {
	return p.IPv4 == "" && p.IPv6 == ""
}
