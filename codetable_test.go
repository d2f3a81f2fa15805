package huff

import (
	"math/rand"
	"strings"
	"testing"
)

func TestMakeCodeTable(t *testing.T) {
	freq, err := CountFrequencies(newTestReader([]byte("abracadabra")))
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}
	root, err := BuildTree(&freq)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	table := MakeCodeTable(root)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tLookup(97) = \"0\"\n",
		"\tLookup(98) = \"101\"\n",
		"\tLookup(99) = \"1110\"\n",
		"\tLookup(100) = \"1111\"\n",
		"\tLookup(114) = \"110\"\n",
		"\tLookup(256) = \"100\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
	if table.Len() != 6 {
		t.Errorf("expected 6 codes, got %d", table.Len())
	}
	if _, ok := table.Lookup('z'); ok {
		t.Error("expected no code for 'z'")
	}
	if _, ok := table.Lookup(InvalidSymbol); ok {
		t.Error("expected no code for InvalidSymbol")
	}
	if bits := table.EncodedSize(&freq); bits != 5*1+2*3+2*3+1*4+1*4+1*3 {
		t.Errorf("expected %d payload bits, got %d", 5*1+2*3+2*3+1*4+1*4+1*3, bits)
	}
}

func TestMakeCodeTable_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		var freq FrequencyTable
		n := 1 + rng.Intn(4096)
		for j := 0; j < n; j++ {
			// Skewed so that some codes grow long.
			freq[rng.Intn(1+rng.Intn(AlphabetSize-1))]++
		}
		freq[PseudoEOF] = 1

		root, err := BuildTree(&freq)
		if err != nil {
			t.Fatalf("BuildTree failed: %v", err)
		}
		table := MakeCodeTable(root)
		if table.Len() != freq.Distinct() {
			t.Fatalf("iteration %d: expected %d codes, got %d", i, freq.Distinct(), table.Len())
		}

		var codes []Code
		for sym := Symbol(0); sym <= MaxSymbol; sym++ {
			if hc, ok := table.Lookup(sym); ok {
				codes = append(codes, hc)
			}
		}
		for a := range codes {
			for b := range codes {
				if a != b && codes[a].HasPrefix(codes[b]) {
					t.Fatalf("iteration %d: code %s has prefix %s", i, codes[a], codes[b])
				}
			}
		}
	}
}

func TestMakeCodeTable_SingleLeaf(t *testing.T) {
	table := MakeCodeTable(NewLeaf(PseudoEOF, 1))
	hc, ok := table.Lookup(PseudoEOF)
	if !ok || hc.Len() != 0 {
		t.Errorf("expected the empty code for EOF, got (%s, %v)", hc, ok)
	}
	if table.MinSize() != 0 || table.MaxSize() != 0 {
		t.Errorf("expected sizes 0 .. 0, got %d .. %d", table.MinSize(), table.MaxSize())
	}
}

func TestMakeCodeTable_SingleChild(t *testing.T) {
	root := &Node{Left: NewInternal(NewLeaf('a', 1), NewLeaf(PseudoEOF, 1))}
	table := MakeCodeTable(root)

	type testRow struct {
		sym    Symbol
		expect string
	}
	testData := [...]testRow{
		{sym: 'a', expect: `"00"`},
		{sym: PseudoEOF, expect: `"01"`},
	}
	for _, row := range testData {
		hc, ok := table.Lookup(row.sym)
		if !ok || hc.String() != row.expect {
			t.Errorf("%v: expected %s, got (%s, %v)", row.sym, row.expect, hc, ok)
		}
	}
	if table.Len() != 2 {
		t.Errorf("expected 2 codes, got %d", table.Len())
	}
}

func TestMakeCodeTable_Nil(t *testing.T) {
	table := MakeCodeTable(nil)
	if table.Len() != 0 {
		t.Errorf("expected an empty table, got %d codes", table.Len())
	}
}
