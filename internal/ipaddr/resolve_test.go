package ipaddr

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFirstHostAddress(t *testing.T) {
	tests := []struct {
		in   string
		want AddressPair
	}{
		{
			in:   "172.16.10.0/24",
			want: AddressPair{IPv4: "172.16.10.1", IPv6: "0:0:0:0:0:ffff:ac10:a01"},
		},
		{
			in:   "192.168.1.216/30",
			want: AddressPair{IPv4: "192.168.1.217", IPv6: "0:0:0:0:0:ffff:c0a8:1d9"},
		},
		{
			in:   "172.16.10.128/25",
			want: AddressPair{IPv4: "172.16.10.129", IPv6: "0:0:0:0:0:ffff:ac10:a81"},
		},
		{
			in:   "10.10.10.1",
			want: AddressPair{IPv4: "10.10.10.1", IPv6: "0:0:0:0:0:ffff:a0a:a01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ResolveFirstHostAddress(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFirstHostAddressRejectsMaskNotation(t *testing.T) {
	got, err := ResolveFirstHostAddress("172.16.10.0 255.255.255.0")
	require.ErrorIs(t, err, ErrInvalidCIDRFormat)
	assert.True(t, got.IsZero())
}

func TestResolveFirstHostAddressRejectsOutOfRange(t *testing.T) {
	for _, in := range []string{"300.1.1.0/24", "1.1.1.256/24", "1.1.1.0/40", "1.1.1.0/-3"} {
		got, err := ResolveFirstHostAddress(in)
		require.ErrorIs(t, err, ErrInvalidCIDRFormat, in)
		assert.True(t, got.IsZero(), in)
	}
}

func TestResolvedIPv4AlwaysMaps(t *testing.T) {
	for _, in := range []string{"0.0.0.0/0", "255.255.255.255/32", "10.0.0.0/31", "8.8.8.8"} {
		pair, err := ResolveFirstHostAddress(in)
		require.NoError(t, err, in)

		mapped, ok := MapIPv4ToIPv6(pair.IPv4)
		require.True(t, ok, in)
		assert.Equal(t, pair.IPv6, mapped, in)
	}
}

func TestResolveFirstHostAddressConcurrentCalls(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := ResolveFirstHostAddress("172.16.10.0/24")
				assert.NoError(t, err)
				assert.Equal(t, "172.16.10.1", got.IPv4)
			}
		}()
	}
	wg.Wait()
}
