package domain

import (
	"context"

	"github.com/aaustin-1965/app-ip-address/internal/ipaddr"
)

type AddressService interface {
	FirstIPAddress(ctx context.Context, cidr string) (ipaddr.AddressPair, error)
	IPv4MappedIPv6Address(ctx context.Context, ipv4 string) (string, error)
}
