package transferenc

import "github.com/indigo-web/utils/strcomp"

// Encoding is a standard transfer coding, as registered by IANA for use in
// the Transfer-Encoding header.
type Encoding uint8

const (
	// Unknown marks a transfer-extension: a token which matches none of the
	// standard codings.
	Unknown Encoding = iota
	Chunked
	Compress
	Deflate
	Gzip

	// Count is the last one enum, so contains the greatest integer value of
	// all the codings. So real number of codings is lower by 1
	Count = iota - 1
)

// List contains all the standard codings, sorted by their integer value.
// Unknown is not included, so in order to index the List by an Encoding,
// you must subtract 1 first.
var List = []Encoding{Chunked, Compress, Deflate, Gzip}

// ParseEncoding matches a single trimmed token against the standard codings.
// Names are case-insensitive (RFC 7230 section 4). The legacy x-gzip and
// x-compress aliases are recognized, as some old clients still send them.
// Anything else results in Unknown.
func ParseEncoding(str string) Encoding {
	switch len(str) {
	case 4:
		if strcomp.EqualFold(str, "gzip") {
			return Gzip
		}
	case 6:
		if strcomp.EqualFold(str, "x-gzip") {
			return Gzip
		}
	case 7:
		if strcomp.EqualFold(str, "chunked") {
			return Chunked
		} else if strcomp.EqualFold(str, "deflate") {
			return Deflate
		}
	case 8:
		if strcomp.EqualFold(str, "compress") {
			return Compress
		}
	case 10:
		if strcomp.EqualFold(str, "x-compress") {
			return Compress
		}
	}

	return Unknown
}

func (e Encoding) String() string {
	switch e {
	case Chunked:
		return "chunked"
	case Compress:
		return "compress"
	case Deflate:
		return "deflate"
	case Gzip:
		return "gzip"
	default:
		return "unknown"
	}
}

// Token is a single classified entry of a Transfer-Encoding header value.
type Token struct {
	// Encoding is the recognized standard coding, or Unknown for extensions
	Encoding Encoding
	// Name is the trimmed token text in its original casing. It aliases the
	// source value, so stays valid only as long as the source does
	Name string
}

// Std tells, whether the token is one of the standard codings
func (t Token) Std() bool {
	return t.Encoding != Unknown
}
