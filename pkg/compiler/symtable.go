package compiler

import (
	"fmt"
	"strings"
)

// TypeInteger is the only data type in the grammar: every literal is a
// base-10 integer.
const TypeInteger = "integer"

// Symbol is one row of the symbol table: a literal value and the simulated
// storage address allocated for it.
type Symbol struct {
	Value   int
	Address string
}

// SymbolTable maps literal values to simulated addresses. Rows keep the
// order in which values were first seen during the left-to-right walk, and
// addresses are numbered in that same order (addr_1, addr_2, ...).
type SymbolTable struct {
	addrs map[int]string
	order []Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{addrs: make(map[int]string)}
}

// Allocate returns the address for value, assigning the next sequential
// address label the first time the value is seen. The second result is
// true when the value was already present.
func (s *SymbolTable) Allocate(value int) (string, bool) {
	if addr, ok := s.addrs[value]; ok {
		return addr, true
	}
	addr := fmt.Sprintf("addr_%d", len(s.order)+1)
	s.addrs[value] = addr
	s.order = append(s.order, Symbol{Value: value, Address: addr})
	return addr, false
}

// Lookup returns the address for value and whether it was allocated.
func (s *SymbolTable) Lookup(value int) (string, bool) {
	addr, ok := s.addrs[value]
	return addr, ok
}

// Symbols returns the rows in first-occurrence order.
func (s *SymbolTable) Symbols() []Symbol {
	return s.order
}

func (s *SymbolTable) Len() int {
	return len(s.order)
}

// String returns a deterministically ordered dump of the table.
func (s *SymbolTable) String() string {
	var sb strings.Builder
	for _, sym := range s.order {
		fmt.Fprintf(&sb, "  %-8d %s\n", sym.Value, sym.Address)
	}
	return sb.String()
}

// TypeEntry is one row of the type table.
type TypeEntry struct {
	Value int
	Type  string
}

// TypeTable records the inferred type of every symbol, keyed like the
// symbol table and kept in the same first-occurrence order.
type TypeTable struct {
	types map[int]string
	order []TypeEntry
}

func NewTypeTable() *TypeTable {
	return &TypeTable{types: make(map[int]string)}
}

// define inserts a row for value unless one already exists.
func (t *TypeTable) define(value int, typ string) {
	if _, ok := t.types[value]; ok {
		return
	}
	t.types[value] = typ
	t.order = append(t.order, TypeEntry{Value: value, Type: typ})
}

// TypeOf returns the recorded type for value and whether it was found.
func (t *TypeTable) TypeOf(value int) (string, bool) {
	typ, ok := t.types[value]
	return typ, ok
}

// Entries returns the rows in first-occurrence order.
func (t *TypeTable) Entries() []TypeEntry {
	return t.order
}

func (t *TypeTable) Len() int {
	return len(t.order)
}

// String returns a deterministically ordered dump of the table.
func (t *TypeTable) String() string {
	var sb strings.Builder
	for _, entry := range t.order {
		fmt.Fprintf(&sb, "  %-8d %s\n", entry.Value, entry.Type)
	}
	return sb.String()
}

// BuildTables walks the tree depth-first, left subtree fully before right,
// and fills both tables. The first occurrence of a literal value allocates
// the next address and a type row; later occurrences of the same value
// reuse the existing address. Dedup triggers on literal value identity
// only: equal subexpressions are not shared.
func BuildTables(root Expr) (*SymbolTable, *TypeTable) {
	syms := NewSymbolTable()
	types := NewTypeTable()

	var visit func(e Expr)
	visit = func(e Expr) {
		switch n := e.(type) {
		case *NumberLit:
			if _, seen := syms.Allocate(n.Value); !seen {
				types.define(n.Value, TypeInteger)
			}
		case *BinaryExpr:
			visit(n.Left)
			visit(n.Right)
		default:
			panic(fmt.Sprintf("unknown expression node %T", e))
		}
	}
	visit(root)

	return syms, types
}
