package reservation

import (
	"crypto/rand"

	"github.com/hashtagbbq/tableside/internal/port"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 8
)

// randomTokens draws uniform 8-character confirmation codes over [A-Z0-9].
type randomTokens struct{}

var _ port.TokenSource = randomTokens{}

func (randomTokens) Token() string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand failing means the platform is broken
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
