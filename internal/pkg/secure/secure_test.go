package secure

import (
	"strings"
	"testing"
)

func TestMD5(t *testing.T) {
	if got := MD5("a@b.com"); got != "e9e9e11a3a27ac7b53b74e8c50b32dfa" {
		t.Fatalf("unexpected digest: %s", got)
	}
	if MD5("a@b.com") != MD5("a@b.com") {
		t.Fatalf("digest not deterministic")
	}
}

func TestHMAC(t *testing.T) {
	a := HMAC("key-1", "payload")
	if len(a) != 128 {
		t.Fatalf("unexpected length: %d", len(a))
	}
	if a != HMAC("key-1", "payload") {
		t.Fatalf("hmac not deterministic")
	}
	if a == HMAC("key-2", "payload") {
		t.Fatalf("key does not affect digest")
	}
}

func TestSalt(t *testing.T) {
	for _, n := range []int{1, 22, 64} {
		s := Salt(n)
		if len(s) != n {
			t.Fatalf("Salt(%d) length %d", n, len(s))
		}
	}
	if Salt(22) == Salt(22) {
		t.Fatalf("salts collide")
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	salt := Salt(22)
	hash, err := HashPassword("Sup3rSecret", salt)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "Sup3rSecret" || hash == "" {
		t.Fatalf("hash looks wrong: %q", hash)
	}

	if !CheckPassword("Sup3rSecret", salt, hash) {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword("WrongPass1", salt, hash) {
		t.Fatalf("wrong password accepted")
	}
	if CheckPassword("Sup3rSecret", Salt(22), hash) {
		t.Fatalf("wrong salt accepted")
	}
}

func TestReference(t *testing.T) {
	a, b := Reference(), Reference()
	if a == b {
		t.Fatalf("references collide")
	}
	if len(a) < 32 {
		t.Fatalf("reference too short: %q", a)
	}
}

func TestDigits(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := Digits(6)
		if len(code) != 6 {
			t.Fatalf("unexpected length: %q", code)
		}
		if code[0] == '0' {
			t.Fatalf("leading zero: %q", code)
		}
		if strings.TrimLeft(code, "0123456789") != "" {
			t.Fatalf("non-numeric code: %q", code)
		}
	}
	if Digits(0) != "" {
		t.Fatalf("Digits(0) should be empty")
	}
}

func TestCipherRoundTrip(t *testing.T) {
	c := NewCipher("application-secret")

	for _, plaintext := range []string{"123456", "", "a@b.com|168000"} {
		sealed, err := c.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q) returned error: %v", plaintext, err)
		}
		if got := c.Decrypt(sealed); got != plaintext {
			t.Fatalf("round trip mismatch: %q != %q", got, plaintext)
		}
	}
}

func TestCipherRejectsTampering(t *testing.T) {
	c := NewCipher("application-secret")
	sealed, err := c.Encrypt("123456")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	if NewCipher("other-secret").Decrypt(sealed) != "" {
		t.Fatalf("wrong key decrypted")
	}
	if c.Decrypt("not-base64!") != "" {
		t.Fatalf("garbage decrypted")
	}
	if c.Decrypt("") != "" {
		t.Fatalf("empty input decrypted")
	}
}
