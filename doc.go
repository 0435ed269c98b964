// Package jarowinkler computes the Jaro-Winkler similarity of two byte
// strings, a score in [0, 1] where 1 means identical.
//
// Key functions:
//   - Similarity: Jaro-Winkler score of two strings
//   - SimilarityBytes: the same score over byte slices
//   - Jaro: the Jaro score without the common-prefix boost
//
// Inputs are compared byte by byte; no Unicode decoding takes place.
// Every function is pure and safe for concurrent use, and inputs of up to
// 128 bytes are scored without heap allocation.
package jarowinkler
