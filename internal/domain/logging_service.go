package domain

import (
	"context"
	"log/slog"

	"github.com/aaustin-1965/app-ip-address/internal/ipaddr"
)

type loggingAddressService struct {
	logger *slog.Logger
	next   AddressService
}

func NewLoggingAddressService(logger *slog.Logger, next AddressService) AddressService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingAddressService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingAddressService) FirstIPAddress(ctx context.Context, cidr string) (ipaddr.AddressPair, error) {
	pair, err := s.next.FirstIPAddress(ctx, cidr)
	if err != nil {
		s.logger.ErrorContext(ctx, "resolve first ip address failed", "cidr", cidr, "err", err.Error())
		return ipaddr.AddressPair{}, err
	}

	s.logger.DebugContext(ctx, "first ip address resolved", "cidr", cidr, "ipv4", pair.IPv4, "ipv6", pair.IPv6)
	return pair, nil
}

func (s *loggingAddressService) IPv4MappedIPv6Address(ctx context.Context, ipv4 string) (string, error) {
	mapped, err := s.next.IPv4MappedIPv6Address(ctx, ipv4)
	if err != nil {
		s.logger.ErrorContext(ctx, "map ipv4 to ipv6 failed", "ipv4", ipv4, "err", err.Error())
		return "", err
	}

	s.logger.DebugContext(ctx, "ipv4 mapped", "ipv4", ipv4, "ipv6", mapped)
	return mapped, nil
}
