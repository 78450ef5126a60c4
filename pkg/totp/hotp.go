package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"
	"strconv"
	"strings"
	"time"
)

// stepCounter converts a wall-clock time into a step counter:
// floor(unixMillis / 1000 / step). Integer division keeps the result
// identical across platforms.
func stepCounter(at time.Time, step int) int64 {
	return at.UnixMilli() / 1000 / int64(step)
}

// hashFunc maps an algorithm name to its hash constructor. Unknown names
// fail here, at the point of selection, rather than producing wrong codes.
func hashFunc(algorithm Algorithm) (func() hash.Hash, error) {
	switch algorithm {
	case AlgorithmSHA1:
		return sha1.New, nil
	case AlgorithmSHA256:
		return sha256.New, nil
	case AlgorithmSHA512:
		return sha512.New, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
}

// hotpCode computes an RFC 4226 code for the given key and counter.
//
// The counter is encoded as 8 big-endian bytes. Window arithmetic can push
// it below zero near the epoch; the uint64 conversion wraps two's
// complement rather than failing. Dynamic truncation reads a 31-bit
// big-endian integer at the offset named by the digest's low nibble, which
// stays in bounds for every supported digest size (>= 20 bytes).
func hotpCode(newHash func() hash.Hash, key []byte, counter int64, digits int) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], uint64(counter))

	mac := hmac.New(newHash, key)
	mac.Write(msg[:])
	digest := mac.Sum(nil)

	offset := digest[len(digest)-1] & 0x0f
	value := uint64(digest[offset]&0x7f)<<24 |
		uint64(digest[offset+1])<<16 |
		uint64(digest[offset+2])<<8 |
		uint64(digest[offset+3])

	mod := uint64(1)
	for i := 0; i < digits && i < 10; i++ {
		mod *= 10
	}

	code := strconv.FormatUint(value%mod, 10)
	if len(code) < digits {
		code = strings.Repeat("0", digits-len(code)) + code
	}
	return code
}
