package domain

import (
	"context"
	"fmt"

	"github.com/aaustin-1965/app-ip-address/internal/ipaddr"
)

type addressService struct{}

func NewAddressService() AddressService {
	return addressService{}
}

func (addressService) FirstIPAddress(_ context.Context, cidr string) (ipaddr.AddressPair, error) {
	pair, err := ipaddr.ResolveFirstHostAddress(cidr)
	if err != nil {
		return ipaddr.AddressPair{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return pair, nil
}

func (addressService) IPv4MappedIPv6Address(_ context.Context, ipv4 string) (string, error) {
	mapped, ok := ipaddr.MapIPv4ToIPv6(ipv4)
	if !ok {
		return "", fmt.Errorf("%w: %w: %q", ErrInvalidInput, ipaddr.ErrInvalidIPv4Format, ipv4)
	}
	return mapped, nil
}
