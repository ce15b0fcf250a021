package system

import (
	"context"
	"net"
	"testing"
)

func ipNet(s string) *net.IPNet {
	ip, n, err := net.ParseCIDR(s)
	if err != nil {
		panic(err)
	}
	n.IP = ip
	return n
}

func TestLocalIPv4(t *testing.T) {
	lo := Interface{Name: "lo", Flags: net.FlagUp | net.FlagLoopback, Addrs: []net.Addr{ipNet("127.0.0.1/8")}}
	down := Interface{Name: "eth1", Flags: 0, Addrs: []net.Addr{ipNet("10.9.9.9/24")}}
	v6 := Interface{Name: "eth2", Flags: net.FlagUp, Addrs: []net.Addr{ipNet("fe80::1/64"), ipNet("2001:db8::1/64")}}
	linkLocal := Interface{Name: "eth3", Flags: net.FlagUp, Addrs: []net.Addr{ipNet("169.254.10.1/16")}}
	eth := Interface{Name: "eth0", Flags: net.FlagUp, Addrs: []net.Addr{ipNet("fe80::2/64"), ipNet("192.168.1.20/24")}}
	wlan := Interface{Name: "wlan0", Flags: net.FlagUp, Addrs: []net.Addr{&net.IPAddr{IP: net.ParseIP("192.168.4.1")}}}

	cases := []struct {
		name   string
		ifaces []Interface
		want   string
	}{
		{"none", nil, ""},
		{"loopback only", []Interface{lo}, ""},
		{"skips down, v6 and link-local", []Interface{lo, down, v6, linkLocal, eth}, "192.168.1.20"},
		{"wireless preferred", []Interface{lo, eth, wlan}, "192.168.4.1"},
	}
	for _, c := range cases {
		if got := LocalIPv4(c.ifaces); got != c.want {
			t.Fatalf("%s: LocalIPv4 = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestInterfaceNetInfoNeverReturnsLoopback(t *testing.T) {
	ip, err := InterfaceNetInfo{}.IP(context.Background())
	if err != nil {
		t.Skipf("interfaces unavailable: %v", err)
	}
	if ip == "" {
		return
	}
	if parsed := net.ParseIP(ip); parsed == nil || parsed.To4() == nil || parsed.IsLoopback() {
		t.Fatalf("IP() = %q", ip)
	}
}

func TestInterfaceNetInfoHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ifaces, err := net.Interfaces()
	if err != nil || len(ifaces) == 0 {
		t.Skip("no interfaces")
	}
	if _, err := (InterfaceNetInfo{}).IP(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}
