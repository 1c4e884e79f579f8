package ipaddr

import "errors"

var (
	ErrInvalidCIDRFormat = errors.New("invalid cidr format")
	ErrInvalidIPv4Format = errors.New("invalid ipv4 format")
)
