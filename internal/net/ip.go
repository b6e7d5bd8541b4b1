package net

import (
	"log"
	"net"
)

var loopback = net.IPv4(127, 0, 0, 1)

// OutgoingIP finds the local address other peers on the LAN can reach us at.
func OutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// No route to the internet; pick an interface instead.
		return lanIP(interfaceAddrs()).String()
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// interfaceAddrs lists the addresses of interfaces that are up, skipping
// loopback. Interfaces that cannot be read are logged and left out.
func interfaceAddrs() []net.Addr {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Printf("[NET] Listing interfaces failed: %v", err)
		return nil
	}
	var all []net.Addr
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			log.Printf("[NET] Reading addresses of %s failed: %v", iface.Name, err)
			continue
		}
		all = append(all, addrs...)
	}
	return all
}

// lanIP picks the first IPv4 address from addrs, falling back to loopback.
func lanIP(addrs []net.Addr) net.IP {
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		if v4 := ipnet.IP.To4(); v4 != nil && !v4.IsLoopback() {
			return v4
		}
	}
	log.Println("[NET] No suitable local IP found, share links may not work")
	return loopback
}
