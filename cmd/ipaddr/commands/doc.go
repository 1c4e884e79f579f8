// Package commands implements the ipaddr CLI: resolving first host addresses,
// mapping IPv4 addresses into IPv6 and serving the HTTP API.
package commands
