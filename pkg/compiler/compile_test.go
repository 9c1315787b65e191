package compiler

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/kr/pretty"
)

// TestCompile runs the whole pipeline over the reference expression and
// checks every artifact in the result.
func TestCompile(t *testing.T) {
	res, err := Compile("3 + 4 * 2")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}

	wantTokens := []Token{
		{Type: NUMBER, Lexeme: "3", Pos: 0},
		{Type: PLUS, Lexeme: "+", Pos: 2},
		{Type: NUMBER, Lexeme: "4", Pos: 4},
		{Type: STAR, Lexeme: "*", Pos: 6},
		{Type: NUMBER, Lexeme: "2", Pos: 8},
		{Type: EOF, Lexeme: "", Pos: 9},
	}
	if !reflect.DeepEqual(res.Tokens, wantTokens) {
		t.Errorf("tokens mismatch:\n%s", strings.Join(pretty.Diff(wantTokens, res.Tokens), "\n"))
	}

	wantAST := &BinaryExpr{
		Op:   PLUS,
		Left: &NumberLit{Value: 3, Pos: 0},
		Right: &BinaryExpr{
			Op:    STAR,
			Left:  &NumberLit{Value: 4, Pos: 4},
			Right: &NumberLit{Value: 2, Pos: 8},
		},
	}
	if !reflect.DeepEqual(res.AST, wantAST) {
		t.Errorf("AST mismatch:\n%s", strings.Join(pretty.Diff(Expr(wantAST), res.AST), "\n"))
	}

	wantSymbols := []Symbol{
		{Value: 3, Address: "addr_1"},
		{Value: 4, Address: "addr_2"},
		{Value: 2, Address: "addr_3"},
	}
	if got := res.Symbols.Symbols(); !reflect.DeepEqual(got, wantSymbols) {
		t.Errorf("symbols = %v, want %v", got, wantSymbols)
	}

	wantTypes := []TypeEntry{
		{Value: 3, Type: TypeInteger},
		{Value: 4, Type: TypeInteger},
		{Value: 2, Type: TypeInteger},
	}
	if got := res.Types.Entries(); !reflect.DeepEqual(got, wantTypes) {
		t.Errorf("types = %v, want %v", got, wantTypes)
	}

	wantCode := []Instruction{
		{Dest: "t1", Left: "addr_2", Op: "*", Right: "addr_3"},
		{Dest: "t2", Left: "addr_1", Op: "+", Right: "t1"},
	}
	if !reflect.DeepEqual(res.Code, wantCode) {
		t.Errorf("code = %v, want %v", res.Code, wantCode)
	}
	if res.Ref != "t2" {
		t.Errorf("ref = %q, want \"t2\"", res.Ref)
	}
}

func TestCompileBareLiteral(t *testing.T) {
	res, err := Compile("5")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if len(res.Code) != 0 {
		t.Errorf("bare literal emitted %v, want no instructions", res.Code)
	}
	if res.Ref != "addr_1" {
		t.Errorf("ref = %q, want \"addr_1\"", res.Ref)
	}
}

// TestCompileErrors checks that the first failing stage aborts the
// pipeline and its error reaches the caller unchanged.
func TestCompileErrors(t *testing.T) {
	t.Run("Lexical", func(t *testing.T) {
		res, err := Compile("3 + @ 5")
		if res != nil {
			t.Errorf("Compile returned a result alongside the error: %+v", res)
		}
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Fatalf("error is %T, want *LexError", err)
		}
		if lexErr.Pos != 4 || lexErr.Char != '@' {
			t.Errorf("error = {Pos: %d, Char: %q}, want {Pos: 4, Char: '@'}", lexErr.Pos, lexErr.Char)
		}
	})

	t.Run("Syntactic", func(t *testing.T) {
		res, err := Compile("(3 + 4")
		if res != nil {
			t.Errorf("Compile returned a result alongside the error: %+v", res)
		}
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Fatalf("error is %T, want *SyntaxError", err)
		}
		want := &SyntaxError{Pos: 6, Expected: "')'", Found: "end of input"}
		if !reflect.DeepEqual(synErr, want) {
			t.Errorf("error = %+v, want %+v", synErr, want)
		}
	})
}

// TestCodeReferences checks the rendered instruction sequence for dangling
// references: every operand must be a symbol-table address or the
// destination of an earlier instruction.
func TestCodeReferences(t *testing.T) {
	inputs := []string{
		"3 + 4 * 2",
		"(3 + 4) * 2",
		"3 + 3",
		"((1 + 2) * (3 - 4)) / 5",
		"7 * (8 + (9 - 1)) - 6 / 2",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			res, err := Compile(input)
			if err != nil {
				t.Fatal(err)
			}

			known := make(map[string]bool)
			for _, sym := range res.Symbols.Symbols() {
				known[sym.Address] = true
			}

			for _, ins := range res.Code {
				fields := strings.Fields(ins.String())
				if len(fields) != 5 || fields[1] != "=" {
					t.Fatalf("instruction %q does not render as dest = left op right", ins)
				}
				for _, operand := range []string{fields[2], fields[4]} {
					if !known[operand] {
						t.Errorf("instruction %q references unknown operand %q", ins, operand)
					}
				}
				known[fields[0]] = true
			}

			if !known[res.Ref] {
				t.Errorf("final reference %q was never defined", res.Ref)
			}
		})
	}
}

// TestCompileConcurrent compiles from many goroutines at once; the
// pipeline shares no state between calls.
func TestCompileConcurrent(t *testing.T) {
	const workers = 8

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				res, err := Compile("(3 + 4) * 2")
				if err != nil {
					t.Errorf("Compile returned error: %v", err)
					return
				}
				if res.Ref != "t2" {
					t.Errorf("ref = %q, want \"t2\"", res.Ref)
					return
				}
			}
		}()
	}
	wg.Wait()
}
