package system

import (
	"context"
	"fmt"
	"net"
	"strings"
)

// NetInfo reports the IPv4 address other devices on the LAN can reach
// this host on. An empty address means none was found.
type NetInfo interface {
	IP(ctx context.Context) (string, error)
}

// Interface is the part of a network interface LocalIPv4 looks at.
type Interface struct {
	Name  string
	Flags net.Flags
	Addrs []net.Addr
}

// InterfaceNetInfo reads addresses from the host's network interfaces.
type InterfaceNetInfo struct{}

func (InterfaceNetInfo) IP(ctx context.Context) (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", fmt.Errorf("list interfaces: %w", err)
	}
	list := make([]Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		addrs, err := iface.Addrs()
		if err != nil {
			// Interfaces can vanish between listing and reading.
			continue
		}
		list = append(list, Interface{Name: iface.Name, Flags: iface.Flags, Addrs: addrs})
	}
	return LocalIPv4(list), nil
}

// LocalIPv4 picks the first IPv4 address on an up, non-loopback interface.
// Wireless interfaces win over wired ones, matching how a phone scanning the
// QR code usually joins the network.
func LocalIPv4(ifaces []Interface) string {
	var wired string
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		ip := firstIPv4(iface.Addrs)
		if ip == "" {
			continue
		}
		if isWireless(iface.Name) {
			return ip
		}
		if wired == "" {
			wired = ip
		}
	}
	return wired
}

func firstIPv4(addrs []net.Addr) string {
	for _, addr := range addrs {
		var ip net.IP
		switch a := addr.(type) {
		case *net.IPNet:
			ip = a.IP
		case *net.IPAddr:
			ip = a.IP
		}
		if ip4 := ip.To4(); ip4 != nil && !ip4.IsLoopback() && !ip4.IsLinkLocalUnicast() {
			return ip4.String()
		}
	}
	return ""
}

func isWireless(name string) bool {
	return strings.HasPrefix(name, "wl")
}
