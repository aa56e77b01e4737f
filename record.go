package sicasm

import (
	"fmt"
	"io"
	"strings"
)

// TextRecord carries one chunk of object-code body at a given address.
// Body is a hex string of at most 60 characters (30 bytes); the byte
// count printed in the rendered line is always len(Body)/2.
type TextRecord struct {
	Address int
	Body    string
}

func (t TextRecord) line() string {
	return fmt.Sprintf("T%06X%02X%s", t.Address, len(t.Body)/2, t.Body)
}

// ModRecord is a format-4 relocation fixup: a 5-half-byte (20-bit) field
// starting at the second byte of the instruction.
type ModRecord struct {
	Address int
}

func (m ModRecord) line() string {
	return fmt.Sprintf("M%06X05", m.Address)
}

// Object is the fully assembled program: the fields needed for the
// Header and End records, plus the Text and Modification records
// produced by Pass2, in source order.
type Object struct {
	ProgramName             string
	StartAddress            int
	TotalMemoryUsage        int
	FirstInstructionAddress int
	Text                    []TextRecord
	Mods                    []ModRecord
}

func (o *Object) header() string {
	return fmt.Sprintf("H%-6s%06X%06X", o.ProgramName, o.StartAddress, o.TotalMemoryUsage)
}

func (o *Object) end() string {
	return fmt.Sprintf("E%06X", o.FirstInstructionAddress)
}

// Write renders the object in the standard Header/Text/Modification/End
// record order, one record per line.
func (o *Object) Write(w io.Writer) error {
	var b strings.Builder
	b.WriteString(o.header())
	b.WriteByte('\n')
	for _, t := range o.Text {
		b.WriteString(t.line())
		b.WriteByte('\n')
	}
	for _, m := range o.Mods {
		b.WriteString(m.line())
		b.WriteByte('\n')
	}
	b.WriteString(o.end())
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func hexByte(b byte) string   { return fmt.Sprintf("%02X", b) }
func hexNibble(v int) string  { return fmt.Sprintf("%X", v&0xF) }
func hex4(v int) string       { return fmt.Sprintf("%04X", v) }
func hex6(v int) string       { return fmt.Sprintf("%06X", v) }
