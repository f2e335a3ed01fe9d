package transferenc

import (
	"iter"
	"strings"

	"github.com/indigo-web/utils/uf"
)

// Tokenizer lazily walks the comma-separated entries of a Transfer-Encoding
// header value. It is single-pass: once drained, a new instance must be
// constructed in order to walk the value again.
type Tokenizer struct {
	value string
}

func NewTokenizer(value string) Tokenizer {
	return Tokenizer{value: value}
}

// NewTokenizerBytes constructs a Tokenizer over a header value which hasn't
// left its read buffer yet. The bytes aren't copied, thereby must not be
// modified while the tokenizer (or any extension token it produced) is in use.
func NewTokenizerBytes(value []byte) Tokenizer {
	return NewTokenizer(uf.B2S(value))
}

// Next returns the next classified token. Empty segments, as produced by
// stray or trailing commas, are skipped instead of being emitted. The second
// return value reports whether a token was found at all; once it turns
// false, all the following calls return false as well.
func (t *Tokenizer) Next() (token Token, ok bool) {
	for len(t.value) > 0 {
		var raw string

		if comma := strings.IndexByte(t.value, ','); comma == -1 {
			raw, t.value = t.value, ""
		} else {
			raw, t.value = t.value[:comma], t.value[comma+1:]
		}

		raw = rstripWS(lstripWS(raw))
		if len(raw) == 0 {
			continue
		}

		return Token{Encoding: ParseEncoding(raw), Name: raw}, true
	}

	return Token{}, false
}

// All returns an iterator over the tokens of the value. Just as the
// Tokenizer itself, the returned seq is single-use.
func All(value string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		tok := NewTokenizer(value)

		for token, ok := tok.Next(); ok; token, ok = tok.Next() {
			if !yield(token) {
				return
			}
		}
	}
}

// Parse eagerly collects all the tokens of the value. Unlike the lazy paths,
// it allocates. Nil is returned if the value contains no tokens.
func Parse(value string) (tokens []Token) {
	tok := NewTokenizer(value)

	for token, ok := tok.Next(); ok; token, ok = tok.Next() {
		tokens = append(tokens, token)
	}

	return tokens
}

func lstripWS(str string) string {
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

func rstripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}
