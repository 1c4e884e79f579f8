package http

import (
	"errors"
	"net/http"

	"github.com/aaustin-1965/app-ip-address/internal/domain"
	"github.com/aaustin-1965/app-ip-address/internal/ipaddr"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary First host address of a subnet
// @Description Returns the first usable host of an IPv4 subnet together with its IPv4-mapped IPv6 form. A bare address is treated as /32.
// @Tags ip-address
// @Produce json
// @Param cidr path string true "IPv4 subnet in CIDR notation, e.g. 172.16.10.0/24"
// @Success 200 {object} AddressPairResponse
// @Failure 400 {object} AddressPairResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} AddressPairResponse
// @Security BearerAuth
// @Router /ip-address/firstIpAddress/{cidr} [get]
func (a *API) handleFirstIPAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cidr := r.PathValue("cidr")

	pair, err := a.Service.FirstIPAddress(ctx, cidr)
	if err != nil {
		status := http.StatusInternalServerError
		resp := failedPairResponse("internal server error")
		if errors.Is(err, domain.ErrInvalidInput) {
			a.Logger.DebugContext(ctx, "rejected cidr", "cidr", cidr, "err", err.Error())
			status = http.StatusBadRequest
			resp = failedPairResponse(ipaddr.ErrInvalidCIDRFormat.Error())
		}
		err = encode(w, r, status, resp)
		if err != nil {
			a.Logger.ErrorContext(ctx, "cant respond to client", "err", err.Error())
		}
		return
	}

	err = encode(w, r, http.StatusOK, pairToResponse(pair))
	if err != nil {
		a.Logger.ErrorContext(ctx, "cant respond to client", "err", err.Error())
	}
}

// @Summary IPv4-mapped IPv6 address
// @Tags ip-address
// @Produce json
// @Param ipv4 path string true "Dotted-quad IPv4 address"
// @Success 200 {object} AddressPairResponse
// @Failure 400 {object} AddressPairResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} AddressPairResponse
// @Security BearerAuth
// @Router /ip-address/ipv4MappedIpv6Address/{ipv4} [get]
func (a *API) handleIPv4MappedIPv6Address(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ipv4 := r.PathValue("ipv4")

	mapped, err := a.Service.IPv4MappedIPv6Address(ctx, ipv4)
	if err != nil {
		status := http.StatusInternalServerError
		resp := failedPairResponse("internal server error")
		if errors.Is(err, domain.ErrInvalidInput) {
			a.Logger.DebugContext(ctx, "rejected ipv4", "ipv4", ipv4, "err", err.Error())
			status = http.StatusBadRequest
			resp = failedPairResponse(ipaddr.ErrInvalidIPv4Format.Error())
		}
		err = encode(w, r, status, resp)
		if err != nil {
			a.Logger.ErrorContext(ctx, "cant respond to client", "err", err.Error())
		}
		return
	}

	err = encode(w, r, http.StatusOK, pairToResponse(ipaddr.AddressPair{IPv4: ipv4, IPv6: mapped}))
	if err != nil {
		a.Logger.ErrorContext(ctx, "cant respond to client", "err", err.Error())
	}
}
