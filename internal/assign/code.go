package assign

import (
	"crypto/rand"
	"strings"
)

// codeAlphabet deliberately excludes visually confusable characters
// (0/O, 1/I/L), leaving 32 symbols. 256 is an exact multiple of 32, so
// modular reduction of random bytes introduces no bias.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	codePrefixLen = 2
	codeSuffixLen = 5
	codeFiller    = 'X'
)

// GenerateCode builds a 7-character access code for a participant: the first
// two ASCII letters of their name uppercased (padded with X when the name
// yields fewer), followed by five random characters from codeAlphabet.
//
// The suffix doubles as a capability token, so it comes from crypto/rand.
// No uniqueness check is performed within a group; with 32^5 combinations a
// collision in a group of a few dozen people is an accepted risk.
func GenerateCode(name string) string {
	var sb strings.Builder
	sb.Grow(codePrefixLen + codeSuffixLen)

	for _, r := range name {
		if sb.Len() == codePrefixLen {
			break
		}
		switch {
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r)
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r - 'a' + 'A')
		}
	}
	for sb.Len() < codePrefixLen {
		sb.WriteByte(codeFiller)
	}

	buf := make([]byte, codeSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for _, b := range buf {
		sb.WriteByte(codeAlphabet[int(b)%len(codeAlphabet)])
	}

	return sb.String()
}
