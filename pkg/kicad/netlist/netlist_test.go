package netlist

import (
	"errors"
	"strings"
	"testing"
)

const sampleNetlist = "# EESchema Netlist Version 1.1 created  01/02/2024 10:00:00\n" +
	"(\n" +
	" ( /5F3A1C2B Resistor_THT:R_Axial_DIN0207 R1 10k\n" +
	"  (    1 Net-(R1-Pad1) )\n" +
	"  (    2 GND )\n" +
	" )\n" +
	" ( /5F3A1C2C-0001   Package_DIP:DIP-8_W7.62mm  U1   NE555 timer\n" +
	"  (    1 GND )\n" +
	"  (    2 Net-(U1-Pad2) )\n" +
	"  (    3 OUT )\n" +
	"  (    4 VCC )\n" +
	"  (    5 Net-(U1-Pad5) )\n" +
	"  (    6 Net-(U1-Pad2) )\n" +
	"  (    7 Net-(U1-Pad7) )\n" +
	"  (    8 VCC )\n" +
	" )\n" +
	" ( /ABCDEF01 Resistor_THT:R_Axial_DIN0207 R2 4k7\r\n" +
	"  (    1 Net-(U1-Pad7) )\r\n" +
	"  (    2 VCC )\r\n" +
	" )\r\n" +
	")\n" +
	"*\n"

func TestSplitLinesRoundTrip(t *testing.T) {
	inputs := []string{sampleNetlist, "no newline at end", "a\n\nb\n", ""}
	for _, in := range inputs {
		if got := strings.Join(SplitLines(in), ""); got != in {
			t.Errorf("round trip changed %q into %q", in, got)
		}
	}
}

func TestParseHeaders(t *testing.T) {
	lines := SplitLines(sampleNetlist)
	headers := ParseHeaders(lines)

	if len(headers) != 3 {
		t.Fatalf("expected 3 headers, got %d", len(headers))
	}

	tests := []struct {
		line      int
		uuid      string
		footprint string
		ref       string
		value     string
	}{
		{2, "5F3A1C2B", "Resistor_THT:R_Axial_DIN0207", "R1", "10k"},
		{6, "5F3A1C2C-0001", "Package_DIP:DIP-8_W7.62mm", "U1", "NE555 timer"},
		{16, "ABCDEF01", "Resistor_THT:R_Axial_DIN0207", "R2", "4k7"},
	}
	for i, tt := range tests {
		h := headers[i]
		if h.Line != tt.line || h.UUID != tt.uuid || h.Footprint != tt.footprint || h.Ref != tt.ref || h.Value != tt.value {
			t.Errorf("header %d = %+v, want %+v", i, h, tt)
		}
		if h.Text != lines[tt.line] {
			t.Errorf("header %d text does not match its line", i)
		}
	}
}

func TestParseHeaderSpanRoundTrip(t *testing.T) {
	lines := []string{
		"( /1 FP R1 v\n",
		"\t(   /dead-BEEF    Some:Foot_print   J12   Conn 1x02\n",
		"(/00 X Y Z",
		"( /abc FP REF\n",
		"( /abc FP REF \r\n",
	}
	for i, line := range lines {
		h, ok := ParseHeader(i, line)
		if !ok {
			t.Errorf("line %q should be a header", line)
			continue
		}
		if got := line[h.Span.Start:h.Span.End]; got != h.Footprint {
			t.Errorf("span of %q yields %q, want %q", line, got, h.Footprint)
		}
	}
}

func TestParseHeaderRejects(t *testing.T) {
	lines := []string{
		"(    1 Net-(R1-Pad1) )",
		"( 5F3A1C2B FP R1 10k",
		"( /XYZ FP R1 10k",
		"( /5F3A FP",
		"# EESchema Netlist Version 1.1",
		")",
		"",
	}
	for _, line := range lines {
		if h, ok := ParseHeader(0, line); ok {
			t.Errorf("line %q should not be a header, got %+v", line, h)
		}
	}
}

func TestParseHeaderEmptyValue(t *testing.T) {
	h, ok := ParseHeader(0, "( /abc FP REF\n")
	if !ok {
		t.Fatal("expected header")
	}
	if h.Ref != "REF" || h.Value != "" {
		t.Errorf("unexpected ref/value %q/%q", h.Ref, h.Value)
	}
}

func TestPinCounts(t *testing.T) {
	lines := SplitLines(sampleNetlist)
	counts := PinCounts(ParseHeaders(lines), lines)

	want := map[string]int{"R1": 2, "U1": 8, "R2": 2}
	for ref, n := range want {
		if counts[ref] != n {
			t.Errorf("%s: expected %d pins, got %d", ref, n, counts[ref])
		}
	}
}

func TestPinCountsUnclosedBlock(t *testing.T) {
	lines := SplitLines("( /1 FP J1 conn\n  ( 1 A )\n  ( 2 B )\n  ( _x )\n  ( 3 C )")
	counts := PinCounts(ParseHeaders(lines), lines)
	if counts["J1"] != 3 {
		t.Errorf("expected 3 pins up to end of input, got %d", counts["J1"])
	}
}

func TestGroupByFootprint(t *testing.T) {
	lines := SplitLines(sampleNetlist)
	headers := ParseHeaders(lines)
	counts := PinCounts(headers, lines)
	groups := GroupByFootprint(headers)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Footprint != "Resistor_THT:R_Axial_DIN0207" {
		t.Errorf("unexpected first group %q", groups[0].Footprint)
	}
	refs := groups[0].Refs()
	if len(refs) != 2 || refs[0] != "R1" || refs[1] != "R2" {
		t.Errorf("unexpected refs %v", refs)
	}
	if n := groups[1].RequiredPins(counts); n != 8 {
		t.Errorf("expected 8 required pins, got %d", n)
	}
	if n := groups[0].RequiredPins(nil); n != 0 {
		t.Errorf("expected unknown pin count, got %d", n)
	}
}

func TestApplyIdentityIsNoop(t *testing.T) {
	lines := SplitLines(sampleNetlist)
	headers := ParseHeaders(lines)

	identity := make(map[string]string)
	for _, h := range headers {
		identity[h.Footprint] = h.Footprint
	}

	out, changes := Apply(lines, headers, identity)
	if len(changes) != 0 {
		t.Errorf("expected no changes, got %d", len(changes))
	}
	if strings.Join(out, "") != sampleNetlist {
		t.Error("identity mapping changed the output")
	}
}

func TestApplyReplacesOnlySpan(t *testing.T) {
	lines := SplitLines(sampleNetlist)
	headers := ParseHeaders(lines)
	mapping := map[string]string{
		"Resistor_THT:R_Axial_DIN0207": "AX2_1",
		"Package_DIP:DIP-8_W7.62mm":    "DIP8",
	}

	out, changes := Apply(lines, headers, mapping)

	if len(changes) != 3 {
		t.Fatalf("expected 3 changes, got %d", len(changes))
	}
	if out[2] != " ( /5F3A1C2B AX2_1 R1 10k\n" {
		t.Errorf("unexpected line %q", out[2])
	}
	if out[6] != " ( /5F3A1C2C-0001   DIP8  U1   NE555 timer\n" {
		t.Errorf("unexpected line %q", out[6])
	}
	if out[16] != " ( /ABCDEF01 AX2_1 R2 4k7\r\n" {
		t.Errorf("CRLF line not preserved: %q", out[16])
	}
	if changes[2].Line != 16 || changes[2].Old != " ( /ABCDEF01 Resistor_THT:R_Axial_DIN0207 R2 4k7" || changes[2].New != " ( /ABCDEF01 AX2_1 R2 4k7" {
		t.Errorf("unexpected change record %+v", changes[2])
	}
	if lines[2] != " ( /5F3A1C2B Resistor_THT:R_Axial_DIN0207 R1 10k\n" {
		t.Error("input lines were modified")
	}

	for i := range lines {
		if i == 2 || i == 6 || i == 16 {
			continue
		}
		if out[i] != lines[i] {
			t.Errorf("line %d changed unexpectedly", i)
		}
	}
}

func TestApplyTwiceIsIdempotent(t *testing.T) {
	lines := SplitLines(sampleNetlist)
	mapping := map[string]string{"Resistor_THT:R_Axial_DIN0207": "AX2_1"}
	first, _ := Apply(lines, ParseHeaders(lines), mapping)

	headers := ParseHeaders(first)
	identity := make(map[string]string)
	for _, h := range headers {
		identity[h.Footprint] = h.Footprint
	}
	second, changes := Apply(first, headers, identity)

	if len(changes) != 0 {
		t.Errorf("second pass produced %d changes", len(changes))
	}
	if strings.Join(second, "") != strings.Join(first, "") {
		t.Error("second pass changed the output")
	}
}

func TestApplySkipsStaleHeaders(t *testing.T) {
	lines := SplitLines("( /1 FP R1 v\n")
	headers := ParseHeaders(lines)
	other := []string{"( /1 OTHERFP R1 v\n"}

	out, changes := Apply(other, headers, map[string]string{"FP": "NEW"})
	if len(changes) != 0 || out[0] != other[0] {
		t.Errorf("stale header was applied: %q", out[0])
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Format
	}{
		{"legacy", sampleNetlist, FormatLegacy},
		{"export", "(export (version \"E\")\n  (design (source \"x.kicad_sch\"))\n  (components\n    (comp (ref \"R1\") (footprint \"Resistor_THT:R_Axial\"))))\n", FormatExport},
		{"other sexp", "(kicad_pcb (version 20211014))", FormatUnknown},
		{"plain text", "hello world", FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.text); got != tt.want {
				t.Errorf("DetectFormat() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNoHeadersError(t *testing.T) {
	err := NoHeadersError("(export (version D))")
	if !errors.Is(err, ErrNoHeaders) {
		t.Fatalf("expected ErrNoHeaders, got %v", err)
	}
	if !strings.Contains(err.Error(), "legacy") {
		t.Errorf("expected re-export hint, got %q", err)
	}

	err = NoHeadersError("garbage")
	if !errors.Is(err, ErrNoHeaders) || !strings.Contains(err.Error(), "Eeschema") {
		t.Errorf("unexpected error %v", err)
	}
}
