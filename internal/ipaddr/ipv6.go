package ipaddr

import (
	"fmt"
	"strconv"
)

const ipv4MappedPrefix = "0:0:0:0:0:ffff:"

// ParseIPv4 accepts exactly a dotted quad: four decimal octets in [0,255] and
// nothing else.
func ParseIPv4(s string) (Octets, error) {
	o, err := parseOctets(s)
	if err != nil {
		return Octets{}, fmt.Errorf("%w: %q: %v", ErrInvalidIPv4Format, s, err)
	}
	return o, nil
}

// MapIPv4ToIPv6 returns the IPv4-mapped IPv6 form of s, e.g. 10.10.10.1 becomes
// 0:0:0:0:0:ffff:a0a:a01. It reports false when s is not a dotted quad.
func MapIPv4ToIPv6(s string) (string, bool) {
	o, err := ParseIPv4(s)
	if err != nil {
		return "", false
	}
	return mapOctets(o), true
}

func mapOctets(o Octets) string {
	hi, lo := o.Hextets()
	b := make([]byte, 0, len(ipv4MappedPrefix)+len("ffff:ffff"))
	b = append(b, ipv4MappedPrefix...)
	b = strconv.AppendUint(b, uint64(hi), 16)
	b = append(b, ':')
	b = strconv.AppendUint(b, uint64(lo), 16)
	return string(b)
}
