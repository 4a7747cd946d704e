package hash

import (
	"strings"
	"testing"
)

func TestPasswordRoundTrip(t *testing.T) {
	h, err := Password("s3cret-password")
	if err != nil {
		t.Fatalf("Password: %v", err)
	}
	if h == "s3cret-password" || !strings.HasPrefix(h, "$2") {
		t.Fatalf("unexpected hash %q", h)
	}
	if !Verify("s3cret-password", h) {
		t.Fatal("valid password rejected")
	}
	if Verify("wrong", h) {
		t.Fatal("wrong password accepted")
	}
}

func TestVerifyGarbageHash(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-hash") {
		t.Fatal("garbage hash verified")
	}
}
