// Package compiler implements the front-end stages of a compiler for
// single integer arithmetic expressions.
//
// Pipeline: source text → Lex → Parse → BuildTables → Generate → three-address code
package compiler
