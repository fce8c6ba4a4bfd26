package verify

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func Verify(path, claimed string) Report {
	return VerifyWith(path, claimed, Options{})
}

// VerifyWith checks the file at path against a pasted hex digest. The
// algorithm is chosen by the digest's length. Every failure is reported in
// the returned Report rather than as an error.
func VerifyWith(path, claimed string, opts Options) Report {
	r := Report{Path: path, Hash: Normalize(claimed)}

	alg, known := AlgorithmForLength(utf8.RuneCountInString(r.Hash))
	if known {
		r.Algorithm = alg
	}

	if path == "" {
		r.Outcome = MissingFilename
		return r
	}
	if !known {
		r.Outcome = UnknownAlgorithm
		return r
	}

	computed, n, err := FileHashHex(path, alg, opts.ChunkSize)
	r.BytesRead = n
	if err != nil {
		r.Outcome = IOFailure
		r.Err = newIOError(path, err)
		return r
	}

	r.Computed = computed
	if digestMatches(r.Hash, computed) {
		r.Outcome = Match
	} else {
		r.Outcome = Mismatch
	}
	return r
}

// Normalize drops every whitespace character so hashes pasted with line
// wraps or stray spaces still line up.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// digestMatches accepts the claimed value in the digest's lowercase or
// uppercase rendering. Mixed case matches neither.
func digestMatches(claimed, digest string) bool {
	switch claimed {
	case digest, strings.ToUpper(digest):
		return true
	default:
		return false
	}
}
