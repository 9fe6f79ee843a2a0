// Package netutil provides listener helpers for the ingestion API server.
//
// The API binds its listener up front and hands it to http.Server.Serve, so a
// port conflict is reported from Start instead of from a background goroutine
// after startup has been logged as successful.
package netutil

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"
)

// AddressInUseError reports that the requested port is already bound. The
// original error is preserved for errors.Is/As checks.
type AddressInUseError struct {
	Port    int
	Address string
	Err     error
}

func (e *AddressInUseError) Error() string {
	return fmt.Sprintf("port %d is already in use on %s", e.Port, e.Address)
}

func (e *AddressInUseError) Unwrap() error {
	return e.Err
}

// IsAddressInUseError checks if an error indicates "address already in use"
// using error type checking rather than string matching.
func IsAddressInUseError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.EADDRINUSE)
	}
	return false
}

// ListenTCP binds a TCP listener on address:port. Port 0 asks the OS for a
// free port; use ListenerPort to discover it.
func ListenTCP(address string, port int) (net.Listener, error) {
	addr := net.JoinHostPort(address, strconv.Itoa(port))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		if IsAddressInUseError(err) {
			return nil, &AddressInUseError{Port: port, Address: address, Err: err}
		}
		return nil, fmt.Errorf("failed to bind TCP to %s: %w", addr, err)
	}
	return listener, nil
}

// ListenerPort extracts the port number from a bound TCP listener.
func ListenerPort(listener net.Listener) (int, error) {
	tcpAddr, ok := listener.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("listener is not a TCP listener: %T", listener.Addr())
	}
	return tcpAddr.Port, nil
}
