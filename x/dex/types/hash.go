package types

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash is an opaque fixed-width identifier. The engine never
// interprets its bytes beyond equality and map-key use; sha256 is used only
// because it is the one hashing primitive already reachable from the
// standard library without pulling in a codec-specific digest the rest of
// the pack doesn't otherwise need (see DESIGN.md).
type Hash [32]byte

// ZeroHash is the hash of no entity; used as a "not found" sentinel where a
// nil-able Hash would otherwise be needed in a Go map key.
var ZeroHash = Hash{}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether h is the zero hash.
func (h Hash) IsZero() bool {
	return h == ZeroHash
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("dex: invalid hash %q: %w", s, err)
	}
	if len(b) != len(h) {
		return fmt.Errorf("dex: invalid hash length %d", len(b))
	}
	copy(h[:], b)
	return nil
}

// HashFromBytes derives a deterministic Hash from the concatenation of its
// inputs. The parts are length-prefixed so that, e.g., H("ab","c") never
// collides with H("a","bc").
func HashFromBytes(parts ...[]byte) Hash {
	h := sha256.New()
	for _, p := range parts {
		var lenBuf [8]byte
		putUint64(lenBuf[:], uint64(len(p)))
		h.Write(lenBuf[:])
		h.Write(p)
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (56 - 8*i))
	}
}
