package http

import "github.com/aaustin-1965/app-ip-address/internal/ipaddr"

// AddressPairResponse is returned by the address endpoints. On failure both
// addresses are null and Error carries the reason.
type AddressPairResponse struct {
	IPv4  *string `json:"ipv4" example:"172.16.10.1"`
	IPv6  *string `json:"ipv6" example:"0:0:0:0:0:ffff:ac10:a01"`
	Error string  `json:"error,omitempty" example:"invalid cidr"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid token"`
}

func pairToResponse(p ipaddr.AddressPair) AddressPairResponse {
	return AddressPairResponse{
		IPv4: &p.IPv4,
		IPv6: &p.IPv6,
	}
}

func failedPairResponse(msg string) AddressPairResponse {
	return AddressPairResponse{Error: msg}
}
