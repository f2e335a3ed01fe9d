// Package transferenc provides a zero-allocation parser for the value of the
// Transfer-Encoding header, as defined by RFC 7230 section 3.3.1. Standard
// codings are classified into enum values, and extension names are passed
// through as sub-slices of the source string for further processing.
//
//	tok := transferenc.NewTokenizer(" gzip, custom-enc, chunked")
//
//	for token, ok := tok.Next(); ok; token, ok = tok.Next() {
//		switch token.Encoding {
//		case transferenc.Chunked:
//			// ...
//		case transferenc.Unknown:
//			// token.Name holds the extension name verbatim
//		}
//	}
//
// The header value must be pre-joined in case it was spread across multiple
// header lines. Validating that the codings are applied in a legal order is
// up to the caller.
package transferenc
