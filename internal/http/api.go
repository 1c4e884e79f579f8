package http

import (
	"log/slog"
	"net/http"

	"github.com/aaustin-1965/app-ip-address/internal/auth"
	"github.com/aaustin-1965/app-ip-address/internal/domain"
	httpSwagger "github.com/swaggo/http-swagger"
)

type API struct {
	Logger        *slog.Logger
	Service       domain.AddressService
	Authenticator auth.Authenticator
}

func NewAPI(logger *slog.Logger, service domain.AddressService, authenticator auth.Authenticator) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		Logger:        logger,
		Service:       service,
		Authenticator: authenticator,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /ip-address/firstIpAddress/{cidr...}", a.handleFirstIPAddress)
	mux.HandleFunc("GET /ip-address/ipv4MappedIpv6Address/{ipv4}", a.handleIPv4MappedIPv6Address)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return a.requestLogger(a.authMiddleware(mux))
}
