package sicasm

import (
	"strings"
	"testing"
)

func TestTextRecordLine(t *testing.T) {
	tr := TextRecord{Address: 0, Body: "010005"}
	want := "T00000003010005"
	if got := tr.line(); got != want {
		t.Errorf("line() = %q, want %q", got, want)
	}
}

func TestModRecordLine(t *testing.T) {
	mr := ModRecord{Address: 1}
	want := "M00000105"
	if got := mr.line(); got != want {
		t.Errorf("line() = %q, want %q", got, want)
	}
}

func TestObjectHeaderAndEnd(t *testing.T) {
	obj := &Object{
		ProgramName:             "COPY",
		StartAddress:            0,
		TotalMemoryUsage:        6,
		FirstInstructionAddress: 0,
	}
	if got, want := obj.header(), "HCOPY  000000000006"; got != want {
		t.Errorf("header() = %q, want %q", got, want)
	}
	if got, want := obj.end(), "E000000"; got != want {
		t.Errorf("end() = %q, want %q", got, want)
	}
}

func TestObjectWriteOrdersRecords(t *testing.T) {
	obj := &Object{
		ProgramName:             "COPY",
		StartAddress:            0,
		TotalMemoryUsage:        8,
		FirstInstructionAddress: 0,
		Text: []TextRecord{
			{Address: 0, Body: "03010004"},
		},
		Mods: []ModRecord{
			{Address: 1},
		},
	}

	var b strings.Builder
	if err := obj.Write(&b); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (header, text, mod, end): %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "H") {
		t.Errorf("first line %q should be a Header record", lines[0])
	}
	if !strings.HasPrefix(lines[1], "T") {
		t.Errorf("second line %q should be a Text record", lines[1])
	}
	if !strings.HasPrefix(lines[2], "M") {
		t.Errorf("third line %q should be a Modification record", lines[2])
	}
	if !strings.HasPrefix(lines[3], "E") {
		t.Errorf("fourth line %q should be an End record", lines[3])
	}
}

func TestHexHelpers(t *testing.T) {
	if got := hexByte(0x4C); got != "4C" {
		t.Errorf("hexByte(0x4C) = %q, want 4C", got)
	}
	if got := hexNibble(10); got != "A" {
		t.Errorf("hexNibble(10) = %q, want A", got)
	}
	if got := hex4(5); got != "0005" {
		t.Errorf("hex4(5) = %q, want 0005", got)
	}
	if got := hex6(0x10004); got != "010004" {
		t.Errorf("hex6(0x10004) = %q, want 010004", got)
	}
}
