package net

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/mdns"
)

const serviceType = "_perfectcircle._tcp"

// Advertise publishes the host's party session on the local network. The
// returned server must be shut down when the session ends.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(
		host,
		serviceType,
		"", // domain, defaults to .local
		"", // hostname, defaults to the OS hostname
		port,
		nil, // IPs, auto-detected
		[]string{"PerfectCircle"},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// FindHost browses the local network for a party host and returns the first
// host:port it finds.
func FindHost() (string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	found := make(chan string, 1)
	go func() {
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			select {
			case found <- fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port):
			default:
			}
		}
	}()
	if err := mdns.Lookup(serviceType, entries); err != nil {
		return "", err
	}
	select {
	case addr := <-found:
		return addr, nil
	default:
		return "", errors.New("no party host found on the local network")
	}
}
