package verify

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

type Algorithm string

const (
	MD5    Algorithm = "MD5"
	SHA1   Algorithm = "SHA1"
	SHA256 Algorithm = "SHA256"
	SHA512 Algorithm = "SHA512"
)

func (a Algorithm) String() string { return string(a) }

// HexLen is the length of the algorithm's digest in hex characters.
func (a Algorithm) HexLen() int {
	switch a {
	case MD5:
		return 32
	case SHA1:
		return 40
	case SHA256:
		return 64
	case SHA512:
		return 128
	default:
		return 0
	}
}

func (a Algorithm) Bits() int { return a.HexLen() * 4 }

// AlgorithmForLength infers the algorithm from the length of a hex digest.
func AlgorithmForLength(n int) (Algorithm, bool) {
	switch n {
	case 32:
		return MD5, true
	case 40:
		return SHA1, true
	case 64:
		return SHA256, true
	case 128:
		return SHA512, true
	default:
		return "", false
	}
}

type Outcome int

const (
	MissingFilename Outcome = iota
	UnknownAlgorithm
	IOFailure
	Match
	Mismatch
)

var outcomeNames = [...]string{
	MissingFilename:  "missing_filename",
	UnknownAlgorithm: "unknown_algorithm",
	IOFailure:        "io_error",
	Match:            "match",
	Mismatch:         "mismatch",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

type IOError struct {
	Op          string `json:"op,omitempty"`
	Path        string `json:"path"`
	Code        int    `json:"code"`
	Description string `json:"description"`

	err error
}

func newIOError(path string, err error) *IOError {
	e := &IOError{Path: path, Description: err.Error(), err: err}

	var pe *fs.PathError
	if errors.As(err, &pe) {
		e.Op = pe.Op
		e.Description = pe.Err.Error()
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		e.Code = int(errno)
		e.Description = errno.Error()
	}
	return e
}

func (e *IOError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("I/O error(%d): %s", e.Code, e.Description)
	}
	return "I/O error: " + e.Description
}

func (e *IOError) Unwrap() error { return e.err }

// Report is the result of one verification. Computed is only set when the
// file was hashed completely.
type Report struct {
	Path      string    `json:"path"`
	Hash      string    `json:"hash"`
	Algorithm Algorithm `json:"algorithm,omitempty"`
	Computed  string    `json:"computed,omitempty"`
	BytesRead int64     `json:"bytes_read"`
	Outcome   Outcome   `json:"outcome"`
	Err       *IOError  `json:"error,omitempty"`
}

func (r Report) OK() bool { return r.Outcome == Match }

type Options struct {
	ChunkSize int
}
