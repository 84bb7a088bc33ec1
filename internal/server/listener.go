package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"

	"github.com/rs/zerolog/log"
)

// Listen binds host:port. While the port is taken it moves on to the next one,
// up to retries more attempts. Any other bind error is returned immediately.
func Listen(host string, port, retries int) (net.Listener, error) {
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		candidate := port + attempt
		if candidate > 65535 {
			break
		}
		addr := net.JoinHostPort(host, strconv.Itoa(candidate))
		ln, err := net.Listen("tcp", addr)
		if err == nil {
			if attempt > 0 {
				log.Warn().Int("requested_port", port).Int("port", candidate).Msg("Requested port busy, listening on the next free one")
			}
			return ln, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("listen on %s: %w", addr, err)
		}
		log.Warn().Int("port", candidate).Msg("Port already in use")
		lastErr = err
	}
	return nil, fmt.Errorf("no free port in %d..%d: %w", port, port+retries, lastErr)
}

// Port reports the TCP port a listener is bound to.
func Port(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}
