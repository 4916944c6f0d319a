// Package secure collects the hashing and encryption primitives shared by the
// entity constructors and the verification flows.
package secure

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/md5"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"
)

// MD5 returns the lowercase hex md5 digest of text. Used only as a
// duplicate-detection key, never for secrets.
func MD5(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// HMAC returns the hex HMAC-SHA512 of text under key. Session identifiers and
// reference hashes go through this.
func HMAC(key, text string) string {
	mac := hmac.New(sha512.New, []byte(key))
	mac.Write([]byte(text))
	return hex.EncodeToString(mac.Sum(nil))
}

// Salt returns a random hex string of length n.
func Salt(n int) string {
	b := make([]byte, (n+1)/2)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the platform source is broken
		panic(err)
	}
	return hex.EncodeToString(b)[:n]
}

const (
	scryptN      = 1 << 15
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
)

// HashPassword derives a hex scrypt key from password and salt. The salt is
// stored alongside the hash so CheckPassword can re-derive it.
func HashPassword(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

// CheckPassword reports whether password re-derives hash under salt.
// Comparison is constant time.
func CheckPassword(password, salt, hash string) bool {
	derived, err := HashPassword(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(derived), []byte(hash)) == 1
}

// Reference returns a unique opaque reference: random id plus a millisecond
// timestamp suffix.
func Reference() string {
	u := uuid.New()
	return hex.EncodeToString(u[:]) + fmt.Sprintf("%d", time.Now().UnixMilli())
}

// Digits returns a random numeric code of n digits, without a leading zero.
func Digits(n int) string {
	if n <= 0 {
		return ""
	}
	low := int64(1)
	for i := 1; i < n; i++ {
		low *= 10
	}
	span := big.NewInt(low * 9)
	v, err := rand.Int(rand.Reader, span)
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%d", low+v.Int64())
}

// Cipher encrypts short strings (verification links) with AES-256-GCM under a
// key derived from the application secret.
type Cipher struct {
	key [32]byte
}

// NewCipher derives the AES key as sha256(secret).
func NewCipher(secret string) *Cipher {
	return &Cipher{key: sha256.Sum256([]byte(secret))}
}

// Encrypt seals plaintext and returns base64url(nonce || ciphertext).
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key[:])
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := aesgcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Any malformed or tampered input yields "".
func (c *Cipher) Decrypt(encoded string) string {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}
	block, err := aes.NewCipher(c.key[:])
	if err != nil {
		return ""
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return ""
	}
	if len(raw) < aesgcm.NonceSize() {
		return ""
	}
	nonce, sealed := raw[:aesgcm.NonceSize()], raw[aesgcm.NonceSize():]
	plaintext, err := aesgcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return ""
	}
	return string(plaintext)
}
