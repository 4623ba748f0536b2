// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// FingerprintSize is the byte length of a Dense fingerprint.
const FingerprintSize = 32

// Fingerprint returns the SHA3-256 digest of a canonical encoding of m:
// shape as two big-endian uint64, then per entry a sign byte, a big-endian
// uint32 magnitude length and the magnitude bytes.
//
// Two matrices have equal fingerprints iff they are Equal (up to hash
// collisions); views and compact copies of the same entries agree.
//
// Complexity: O(total bytes of the entries).
func (m *Dense) Fingerprint() [FingerprintSize]byte {
	h := sha3.New256()
	var hdr [8]byte
	binary.BigEndian.PutUint64(hdr[:], uint64(m.r))
	h.Write(hdr[:])
	binary.BigEndian.PutUint64(hdr[:], uint64(m.c))
	h.Write(hdr[:])

	var lenBuf [4]byte
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v := m.cell(i, j)
			switch v.Sign() {
			case -1:
				h.Write([]byte{2})
			case 0:
				h.Write([]byte{0})
			default:
				h.Write([]byte{1})
			}
			mag := v.Bytes()
			binary.BigEndian.PutUint32(lenBuf[:], uint32(len(mag)))
			h.Write(lenBuf[:])
			h.Write(mag)
		}
	}

	var out [FingerprintSize]byte
	copy(out[:], h.Sum(nil))

	return out
}
