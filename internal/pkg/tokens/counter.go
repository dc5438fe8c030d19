package tokens

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

const DefaultEncoding = "cl100k_base"

// Counter measures and bounds prompt text in BPE tokens.
type Counter struct {
	encoding *tiktoken.Tiktoken
}

// NewCounter loads the named encoding. The first load may need network access
// to fetch the BPE ranks unless TIKTOKEN_CACHE_DIR holds them.
func NewCounter(encoding string) (*Counter, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}

	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken encoding %s: %w", encoding, err)
	}

	return &Counter{encoding: enc}, nil
}

func (c *Counter) Count(text string) int {
	return len(c.encoding.Encode(text, nil, nil))
}

// Truncate keeps at most maxTokens tokens of text. maxTokens <= 0 keeps everything.
func (c *Counter) Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return text
	}

	ids := c.encoding.Encode(text, nil, nil)
	if len(ids) <= maxTokens {
		return text
	}

	return trimPartialRune(c.encoding.Decode(ids[:maxTokens]))
}

// trimPartialRune drops the bytes of a multi-byte character that a token
// boundary cut in half.
func trimPartialRune(s string) string {
	for len(s) > 0 && !utf8.ValidString(s) {
		r, size := utf8.DecodeLastRuneInString(s)
		if r != utf8.RuneError || size != 1 {
			break
		}
		s = s[:len(s)-1]
	}
	return s
}
