// Package gfa reads the subset of GFA 1.x needed to spell out paths as
// linear sequences: segments (S), links (L, validated only), paths (P) and
// walks (W). Everything else in the file is skipped.
//
// Parsing yields a Graph holding a segment table and the paths in input
// order. Resolve and Resolver turn a path's steps into its sequence.
package gfa
