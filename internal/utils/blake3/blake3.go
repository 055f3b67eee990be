package blake3

import (
	"crypto/subtle"
	"encoding/hex"
	"io"

	"github.com/zeebo/blake3"
)

// Compute returns the hex digest of everything read from data.
func Compute(data io.Reader) (string, error) {
	hash := blake3.New()
	if _, err := io.Copy(hash, data); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// Sign returns a keyed digest of parts. The key is derived from secret.
func Sign(secret string, parts ...string) string {
	key := blake3.Sum256([]byte(secret))
	hash, err := blake3.NewKeyed(key[:])
	if err != nil {
		// NewKeyed only fails on a key that is not 32 bytes.
		panic(err)
	}
	for i, p := range parts {
		if i > 0 {
			_, _ = hash.Write([]byte{0})
		}
		_, _ = hash.Write([]byte(p))
	}
	return hex.EncodeToString(hash.Sum(nil))
}

// Verify reports whether sig was produced by Sign with the same arguments.
func Verify(sig, secret string, parts ...string) bool {
	want := Sign(secret, parts...)
	return subtle.ConstantTimeCompare([]byte(sig), []byte(want)) == 1
}

// Digest hashes what is written to it.
type Digest struct {
	hash *blake3.Hasher
}

func NewDigest() *Digest {
	return &Digest{hash: blake3.New()}
}

func (d *Digest) Write(p []byte) (int, error) {
	return d.hash.Write(p)
}

// Hex returns the digest of everything written so far.
func (d *Digest) Hex() string {
	return hex.EncodeToString(d.hash.Sum(nil))
}
