package verify

import (
	"crypto/md5"  // #nosec G501 -- used for file integrity verification only
	"crypto/sha1" // #nosec G505 -- used for file integrity verification only
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

const DefaultChunkSize = 64 << 10 // 64 KiB

func newHasher(algorithm Algorithm) (hash.Hash, error) {
	switch algorithm {
	case SHA256:
		return sha256.New(), nil
	case SHA1:
		return sha1.New(), nil // #nosec G401 -- used for file integrity verification only
	case SHA512:
		return sha512.New(), nil
	case MD5:
		return md5.New(), nil // #nosec G401 -- used for file integrity verification only
	default:
		return nil, fmt.Errorf("unsupported algorithm: %q", algorithm)
	}
}

// FileHashHex streams path through algorithm chunkSize bytes at a time and
// returns the lowercase hex digest along with the number of bytes read.
func FileHashHex(path string, algorithm Algorithm, chunkSize int) (string, int64, error) {
	h, err := newHasher(algorithm)
	if err != nil {
		return "", 0, err
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return "", 0, err
	}
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, chunkSize)
	var read int64
	for {
		n, rerr := f.Read(buf)
		if n > 0 {
			if _, werr := h.Write(buf[:n]); werr != nil {
				return "", read, werr
			}
			read += int64(n)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return "", read, rerr
		}
	}

	return hex.EncodeToString(h.Sum(nil)), read, nil
}
