package marvel

import (
	"testing"
	"time"
)

func TestSignKnownVector(t *testing.T) {
	// md5("1000" + "priv" + "pub")
	got := Sign("1000", "priv", "pub")
	want := "681f00062d702ba0f519106485702dde"
	if got != want {
		t.Fatalf("expected %s got %s", want, got)
	}
}

func TestSignDeterministic(t *testing.T) {
	first := Sign("1700000000000", "private-key", "public-key")
	second := Sign("1700000000000", "private-key", "public-key")
	if first != second {
		t.Fatalf("identical inputs produced different signatures: %s vs %s", first, second)
	}
}

func TestSignInputSensitivity(t *testing.T) {
	base := Sign("1000", "priv", "pub")
	variants := []string{
		Sign("1001", "priv", "pub"),
		Sign("1000", "priw", "pub"),
		Sign("1000", "priv", "puc"),
	}
	for i, v := range variants {
		if v == base {
			t.Fatalf("variant %d collided with base signature", i)
		}
	}
}

func TestSignerAuthParams(t *testing.T) {
	signer, err := NewSigner("pub", "priv")
	if err != nil {
		t.Fatalf("NewSigner returned error: %v", err)
	}
	signer.now = func() time.Time { return time.UnixMilli(1000) }

	params := signer.AuthParams()
	if got := params.Get("ts"); got != "1000" {
		t.Fatalf("expected ts 1000 got %s", got)
	}
	if got := params.Get("apikey"); got != "pub" {
		t.Fatalf("expected apikey pub got %s", got)
	}
	// Hash must be derived from the same ts value sent on the wire.
	if got := params.Get("hash"); got != Sign("1000", "priv", "pub") {
		t.Fatalf("hash does not match ts/private/public derivation: %s", got)
	}
	if params.Get("hash") != "681f00062d702ba0f519106485702dde" {
		t.Fatalf("unexpected hash %s", params.Get("hash"))
	}
}

func TestNewSignerRequiresKeys(t *testing.T) {
	if _, err := NewSigner("", "priv"); err == nil {
		t.Fatal("expected error for missing public key")
	}
	if _, err := NewSigner("pub", ""); err == nil {
		t.Fatal("expected error for missing private key")
	}
}
