package domain

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Target is a host/port pair to be probed for reachability.
type Target struct {
	Host string
	Port int
}

// ParseTarget parses a HOST:PORT string into a Target.
// The string is split on the last colon so IPv6 literals work without
// brackets. The host must be non-empty and the port must be 1-65535.
func ParseTarget(s string) (Target, error) {
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return Target{}, fmt.Errorf("%w: %q (expected HOST:PORT)", ErrInvalidTarget, s)
	}

	host := s[:idx]
	if host == "" {
		return Target{}, fmt.Errorf("%w: %q (host must not be empty)", ErrInvalidTarget, s)
	}

	port, err := strconv.Atoi(s[idx+1:])
	if err != nil || port < 1 || port > 65535 {
		return Target{}, fmt.Errorf("%w: %q (port must be 1-65535)", ErrInvalidTarget, s)
	}

	return Target{Host: host, Port: port}, nil
}

// Addr returns the dialable address, bracketing IPv6 hosts as needed.
func (t Target) Addr() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// String returns the target as HOST:PORT, matching the command-line form.
func (t Target) String() string {
	return fmt.Sprintf("%s:%d", t.Host, t.Port)
}
