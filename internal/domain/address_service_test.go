package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/aaustin-1965/app-ip-address/internal/ipaddr"
)

func TestFirstIPAddressReturnsPair(t *testing.T) {
	svc := NewAddressService()

	pair, err := svc.FirstIPAddress(context.Background(), "172.16.10.0/24")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pair.IPv4 != "172.16.10.1" {
		t.Fatalf("unexpected ipv4: %q", pair.IPv4)
	}
	if pair.IPv6 != "0:0:0:0:0:ffff:ac10:a01" {
		t.Fatalf("unexpected ipv6: %q", pair.IPv6)
	}
}

func TestFirstIPAddressRejectsMaskNotation(t *testing.T) {
	svc := NewAddressService()

	pair, err := svc.FirstIPAddress(context.Background(), "172.16.10.0 255.255.255.0")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !errors.Is(err, ipaddr.ErrInvalidCIDRFormat) {
		t.Fatalf("expected ErrInvalidCIDRFormat, got %v", err)
	}
	if !pair.IsZero() {
		t.Fatalf("expected empty pair, got %+v", pair)
	}
}

func TestIPv4MappedIPv6AddressRejectsOutOfRangeOctet(t *testing.T) {
	svc := NewAddressService()

	mapped, err := svc.IPv4MappedIPv6Address(context.Background(), "172.16.256.1")
	if !errors.Is(err, ipaddr.ErrInvalidIPv4Format) {
		t.Fatalf("expected ErrInvalidIPv4Format, got %v", err)
	}
	if mapped != "" {
		t.Fatalf("expected empty result, got %q", mapped)
	}
}
