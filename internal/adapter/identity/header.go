// Package identity adapts the external session collaborator. Session
// verification itself lives in front of this service; here we only read
// the identity the gateway has already verified.
package identity

import "net/http"

// ownerHeader is set by the session gateway after verifying the caller.
const ownerHeader = "X-User-Id"

// Header resolves the verified owner id from the gateway-set header.
// Reads work anonymously; write handlers reject requests without one.
type Header struct{}

// NewHeader returns the header-based identity adapter.
func NewHeader() Header {
	return Header{}
}

// OwnerID returns the verified owner id and whether one was present.
func (Header) OwnerID(r *http.Request) (string, bool) {
	id := r.Header.Get(ownerHeader)
	return id, id != ""
}
