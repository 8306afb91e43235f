// Package proxy builds the SOCKS5-tunnelled HTTP client the completion
// gateway uses when the daemon runs behind a restricted network.
package proxy

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/proxy"
)

func NewSocksClient(socksAddr string) (*http.Client, error) {
	dialer, err := proxy.SOCKS5("tcp", socksAddr, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("socks dialer: %w", err)
	}

	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialer.Dial(network, addr)
		},
	}

	// Long timeout: completions can take a while and nothing here is
	// cancellable mid-flight anyway.
	return &http.Client{
		Transport: transport,
		Timeout:   120 * time.Second,
	}, nil
}
