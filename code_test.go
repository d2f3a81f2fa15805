package huff

import (
	"bytes"
	"testing"

	"github.com/chronos-tachyon/huff/internal/bitstream"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		size   byte
		bits   uint64
		expect string
	}

	testData := [...]testRow{
		{size: 0, bits: 0x0, expect: `""`},
		{size: 1, bits: 0x0, expect: `"0"`},
		{size: 1, bits: 0x1, expect: `"1"`},
		{size: 4, bits: 0xc, expect: `"1100"`},
		{size: 5, bits: 0x19, expect: `"11001"`},
		{size: 8, bits: 0x0f, expect: `"00001111"`},
	}
	for _, row := range testData {
		hc := MakeCode(row.size, row.bits)
		t.Run(row.expect, func(t *testing.T) {
			if hc.Len() != int(row.size) {
				t.Errorf("expected size %d, got %d", row.size, hc.Len())
			}
			if actual := hc.String(); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestCode_AppendIsPure(t *testing.T) {
	base := MakeCode(3, 0x5)
	left := base.Append(0)
	right := base.Append(1)

	if base.String() != `"101"` {
		t.Errorf("Append modified its receiver: %s", base)
	}
	if left.String() != `"1010"` {
		t.Errorf("expected \"1010\", got %s", left)
	}
	if right.String() != `"1011"` {
		t.Errorf("expected \"1011\", got %s", right)
	}
	if left == right {
		t.Error("sibling codes compare equal")
	}
	if MakeCode(4, 0xa) != left {
		t.Errorf("expected MakeCode(4, 0xa) == %s", left)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   Code
		prefix Code
		expect bool
	}

	testData := [...]testRow{
		{code: MakeCode(3, 0x5), prefix: Code{}, expect: true},
		{code: MakeCode(3, 0x5), prefix: MakeCode(1, 0x1), expect: true},
		{code: MakeCode(3, 0x5), prefix: MakeCode(2, 0x2), expect: true},
		{code: MakeCode(3, 0x5), prefix: MakeCode(3, 0x5), expect: true},
		{code: MakeCode(3, 0x5), prefix: MakeCode(2, 0x3), expect: false},
		{code: MakeCode(3, 0x5), prefix: MakeCode(4, 0xa), expect: false},
		{code: MakeCode(1, 0x0), prefix: MakeCode(1, 0x1), expect: false},
	}
	for _, row := range testData {
		t.Run(row.code.String()+"/"+row.prefix.String(), func(t *testing.T) {
			if actual := row.code.HasPrefix(row.prefix); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}

func TestCode_LongCodes(t *testing.T) {
	// A code of MaxCodeSize bits spans several words; alternate bits so
	// that a misplaced word boundary shows up in the output.
	var hc Code
	for i := 0; i < MaxCodeSize; i++ {
		hc = hc.Append(uint(i % 2))
	}
	if hc.Len() != MaxCodeSize {
		t.Fatalf("expected %d bits, got %d", MaxCodeSize, hc.Len())
	}
	for i := 0; i < MaxCodeSize; i++ {
		if hc.Bit(i) != uint(i%2) {
			t.Fatalf("bit %d: expected %d, got %d", i, i%2, hc.Bit(i))
		}
	}

	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	if err := hc.writeTo(w); err != nil {
		t.Fatalf("writeTo failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	expect := bytes.Repeat([]byte{0x55}, MaxCodeSize/8)
	if !bytes.Equal(expect, buf.Bytes()) {
		t.Errorf("wrong output:\n\texpect: %x\n\tactual: %x", expect, buf.Bytes())
	}
}

func TestSymbol_String(t *testing.T) {
	type testRow struct {
		sym    Symbol
		expect string
	}

	testData := [...]testRow{
		{sym: 'a', expect: `'a'`},
		{sym: 0x0a, expect: "0x0a"},
		{sym: 0xff, expect: "0xff"},
		{sym: PseudoEOF, expect: "EOF"},
		{sym: InvalidSymbol, expect: "Symbol(-1)"},
	}
	for _, row := range testData {
		if actual := row.sym.String(); actual != row.expect {
			t.Errorf("Symbol(%d): expected %s, got %s", int32(row.sym), row.expect, actual)
		}
	}
}
