// Package literal converts between textual numeric literals and values.
//
// The parsing functions are the ones a configuration lexer calls on
// already-scanned number tokens, and the formatting functions are the
// inverse used when writing values back out. They deliberately carry two
// different failure contracts: ParseInteger validates its whole input and
// reports failure, while ParseHex64 and ParseBin64 are silent, best-effort
// accumulators whose zero result is ambiguous. See the function
// documentation for the exact rules.
package literal
