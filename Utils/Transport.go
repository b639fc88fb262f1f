package Utils

import (
	"context"
	"crypto/tls"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// BrowserUserAgent generates a random Windows Chrome User-Agent string.
// Windows 11 still reports as "Windows NT 10.0" for compatibility.
func BrowserUserAgent() string {

	ChromeVersion := rand.Intn(26) + 120
	ChromeBuild := rand.Intn(1500) + 6000
	ChromePatch := rand.Intn(200) + 100

	return fmt.Sprintf("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.%d.%d Safari/537.36", ChromeVersion, ChromeBuild, ChromePatch)

}

// ChromeTransport performs HTTPS requests with a Chrome TLS fingerprint, since some upstreams reject the default Go client at the TLS layer.
type ChromeTransport struct {

	Dialer *net.Dialer

}

func NewChromeTransport() *ChromeTransport {

	return &ChromeTransport{

		Dialer: &net.Dialer{

			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,

		},

	}

}

func (T *ChromeTransport) RoundTrip(Request *http.Request) (*http.Response, error) {

	// Plain HTTP needs no fingerprinting

	if Request.URL.Scheme != "https" {

		return http.DefaultTransport.RoundTrip(Request)

	}

	Host := Request.URL.Hostname()
	Port := Request.URL.Port()

	if Port == "" {

		Port = "443"

	}

	Conn, ErrorDialing := T.Dialer.DialContext(Request.Context(), "tcp", net.JoinHostPort(Host, Port))

	if ErrorDialing != nil {

		return nil, ErrorDialing

	}

	TLSConn := utls.UClient(Conn, &utls.Config{

		ServerName: Host,
		NextProtos: []string{"h2", "http/1.1"},

	}, utls.HelloChrome_Auto)

	if ErrorHandshaking := TLSConn.Handshake(); ErrorHandshaking != nil {

		Conn.Close()
		return nil, ErrorHandshaking

	}

	// Uses HTTP/2 when the server negotiates it via ALPN

	if TLSConn.ConnectionState().NegotiatedProtocol == "h2" {

		H2Transport := &http2.Transport{

			DialTLSContext: func(Ctx context.Context, Network, Addr string, Config *tls.Config) (net.Conn, error) {

				return TLSConn, nil

			},

		}

		return H2Transport.RoundTrip(Request)

	}

	H1Transport := &http.Transport{

		DialTLSContext: func(Ctx context.Context, Network, Addr string) (net.Conn, error) {

			return TLSConn, nil

		},

		DisableKeepAlives: true,

	}

	return H1Transport.RoundTrip(Request)

}

// NewBrowserClient returns an HTTP client backed by the Chrome-fingerprint transport.
func NewBrowserClient(Timeout time.Duration) *http.Client {

	return &http.Client{

		Transport: NewChromeTransport(),
		Timeout:   Timeout,

	}

}
