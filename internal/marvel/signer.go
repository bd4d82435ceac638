// Package marvel relays read-only content from the Marvel Comics API,
// signing every outbound call with the provider's server-side scheme.
package marvel

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"net/url"
	"strconv"
	"time"
)

// Sign computes the provider-mandated request signature: the lowercase hex
// MD5 digest of ts + privateKey + publicKey, in exactly that order with no
// delimiters. MD5 is what the provider's protocol requires; it is not used
// for anything security-sensitive on our side.
func Sign(ts, privateKey, publicKey string) string {
	sum := md5.Sum([]byte(ts + privateKey + publicKey))
	return hex.EncodeToString(sum[:])
}

// Signer produces the per-request authentication query parameters. The
// private key never leaves this struct: only the public key and the derived
// hash are placed on the wire.
type Signer struct {
	publicKey  string
	privateKey string
	now        func() time.Time
}

// NewSigner validates the key pair and returns a Signer.
func NewSigner(publicKey, privateKey string) (*Signer, error) {
	if publicKey == "" || privateKey == "" {
		return nil, errors.New("marvel: api key pair must be configured")
	}
	return &Signer{publicKey: publicKey, privateKey: privateKey, now: time.Now}, nil
}

// AuthParams returns the ts/apikey/hash triple every outbound call must
// carry. The ts value sent is the same one folded into the hash.
func (s *Signer) AuthParams() url.Values {
	ts := strconv.FormatInt(s.now().UnixMilli(), 10)
	params := url.Values{}
	params.Set("ts", ts)
	params.Set("apikey", s.publicKey)
	params.Set("hash", Sign(ts, s.privateKey, s.publicKey))
	return params
}
