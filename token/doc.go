// Package token provides tokenization support for JSON text.
//
// [Tokenize] is a function for tokenizing bytes.
//
// [Unquote] and [Quote] translate between raw quoted string literals and
// their decoded text.
package token
