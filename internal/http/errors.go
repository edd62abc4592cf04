package http

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/url"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
)

// classify tags a round-trip failure. Failures to reach the host or to
// finish in time are connectivity errors; anything else means the peer
// answered with something that is not HTTP.
func classify(op string, err error) error {
	kind := outseta.KindInvalidResponse
	if isConnectivity(err) {
		kind = outseta.KindConnectivity
	}

	return &outseta.Error{Kind: kind, Op: op, Err: err}
}

func isConnectivity(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	if errors.Is(err, io.EOF) {
		return true
	}

	var (
		opErr      *net.OpError
		dnsErr     *net.DNSError
		verifyErr  *tls.CertificateVerificationError
		recordErr  tls.RecordHeaderError
		authErr    x509.UnknownAuthorityError
		hostErr    x509.HostnameError
		invalidErr x509.CertificateInvalidError
	)

	switch {
	case errors.As(err, &opErr), errors.As(err, &dnsErr):
		return true
	case errors.As(err, &verifyErr), errors.As(err, &recordErr):
		return true
	case errors.As(err, &authErr), errors.As(err, &hostErr), errors.As(err, &invalidErr):
		return true
	}

	// *url.Error implements net.Error for every failure, so only its
	// timeout flag is meaningful here.
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}

	return false
}
