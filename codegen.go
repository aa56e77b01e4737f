package sicasm

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Pass2 re-walks the source, using the read-only SymbolTable built by
// Pass1 to select addressing modes and emit Text/Modification records.
// The only mutable state carried across lines is the base register
// binding, updated by BASE directives on Pass2's own copy of the table.
func Pass2(lines []string, st *SymbolTable) (*Object, error) {
	local := *st
	st = &local

	obj := &Object{
		ProgramName:             st.ProgramName,
		StartAddress:            st.StartAddress,
		TotalMemoryUsage:        st.TotalMemoryUsage,
		FirstInstructionAddress: st.FirstInstructionAddress,
	}

	lineNo := 0
	for _, raw := range lines {
		lineNo++
		if strings.HasPrefix(raw, commentTag) {
			continue
		}

		tokens := Tokenize(raw)
		pl, err := classifyLine(tokens, lineNo)
		if err != nil {
			return nil, err
		}

		loc := st.LocationAt(lineNo)
		if IsInstruction(pl.Op) {
			if err := emitInstruction(obj, st, lineNo, loc, pl.Op, pl.Operand); err != nil {
				return nil, err
			}
			continue
		}
		if err := emitDirective(obj, st, lineNo, loc, pl.Op, pl.Operand); err != nil {
			return nil, err
		}
	}

	return obj, nil
}

func emitInstruction(obj *Object, st *SymbolTable, lineNo, loc int, op string, operand *string) error {
	opcode := OpcodeByte(op)
	switch InstructionFormat(op) {
	case 1:
		obj.Text = append(obj.Text, TextRecord{Address: loc, Body: hexByte(opcode)})
		return nil
	case 2:
		return emitFormat2(obj, lineNo, loc, opcode, operand)
	case 4:
		return emitFormat34(obj, st, lineNo, loc, 4, opcode, operand)
	default:
		return emitFormat34(obj, st, lineNo, loc, 3, opcode, operand)
	}
}

func emitFormat2(obj *Object, lineNo, loc int, opcode byte, operand *string) error {
	if operand == nil {
		return errf(lineNo, "format-2 register syntax wrong")
	}
	parts := strings.Split(*operand, ",")
	if len(parts) == 0 || len(parts) > 2 {
		return errf(lineNo, "format-2 register syntax wrong")
	}

	r1, err := registerNumber(parts[0])
	if err != nil {
		return errf(lineNo, "format-2 register syntax wrong")
	}

	r2 := 0
	if len(parts) == 2 {
		r2, err = registerNumber(parts[1])
		if err != nil {
			return errf(lineNo, "format-2 register syntax wrong")
		}
	}

	obj.Text = append(obj.Text, TextRecord{
		Address: loc,
		Body:    hexByte(opcode) + hexNibble(r1) + hexNibble(r2),
	})
	return nil
}

func registerNumber(tok string) (int, error) {
	switch tok {
	case "A":
		return 0, nil
	case "X":
		return 1, nil
	case "L":
		return 2, nil
	case "B":
		return 3, nil
	case "S":
		return 4, nil
	case "T":
		return 5, nil
	case "F":
		return 6, nil
	default:
		return 0, errf(0, "invalid register '%s'", tok)
	}
}

// emitFormat34 selects the addressing mode and emits a format-3 or
// format-4 instruction encoding.
func emitFormat34(obj *Object, st *SymbolTable, lineNo, loc, format int, opcode byte, operand *string) error {
	n, i, x := 0, 0, 0
	rest := ""
	hasOperand := operand != nil
	if hasOperand {
		rest = *operand
		switch {
		case strings.HasPrefix(rest, "#"):
			i, n = 1, 0
			rest = rest[1:]
		case strings.HasPrefix(rest, "@"):
			n, i = 1, 0
			rest = rest[1:]
		default:
			n, i = 1, 1
		}
		if idx := strings.IndexByte(rest, ','); idx >= 0 {
			x = 1
			rest = rest[:idx]
		}
	}

	target := -1
	if hasOperand {
		if addr, ok := st.Lookup(rest); ok {
			target = addr
		}
	}
	resolved := hasOperand && target != -1

	immediate := hasOperand && i == 1 && n == 0 && !resolved
	var literal int
	if immediate {
		v, err := strconv.Atoi(rest)
		if err != nil {
			return errf(lineNo, "non-numeric where numeric required")
		}
		literal = v
	}

	byte1 := opcode | byte(n<<1) | byte(i)

	if format == 3 {
		var disp, p, b int
		switch {
		case immediate:
			disp = literal & 0xFFF
		case !resolved:
			disp = 0
		default:
			pcDisp := target - (loc + 3)
			if pcDisp >= -2048 && pcDisp < 2048 {
				p = 1
				disp = pcDisp & 0xFFF
			} else if st.BaseSet() {
				baseDisp := target - st.BaseRegisterAddress
				if baseDisp >= 0 && baseDisp < 4096 {
					b = 1
					disp = baseDisp
				} else {
					disp = target
				}
			} else {
				disp = target
			}
		}
		flags := x*8 + b*4 + p*2
		dispField := flags<<12 | disp
		obj.Text = append(obj.Text, TextRecord{
			Address: loc,
			Body:    hexByte(byte1) + hex4(dispField),
		})
		return nil
	}

	// format 4
	var addr int
	switch {
	case immediate:
		addr = literal
	case resolved:
		addr = target
	default:
		addr = 0
	}
	flags := 1 + x*8 // e=1 always, x=8 if indexed
	addrField := flags*0x10000 + addr
	obj.Text = append(obj.Text, TextRecord{
		Address: loc,
		Body:    hexByte(byte1) + hex6(addrField),
	})
	if resolved {
		obj.Mods = append(obj.Mods, ModRecord{Address: loc + 1})
	}
	return nil
}

func emitDirective(obj *Object, st *SymbolTable, lineNo, loc int, directive string, operand *string) error {
	switch directive {
	case "BYTE":
		if operand == nil {
			return errf(lineNo, "Invalid or no operand provided for directive.")
		}
		body, err := byteLiteralHex(*operand)
		if err != nil {
			return errf(lineNo, "Invalid or no operand provided for directive.")
		}
		appendTextChunks(obj, loc, body)

	case "WORD":
		if operand == nil {
			return errf(lineNo, "Invalid word operand provided!")
		}
		v, err := strconv.ParseInt(*operand, 10, 64)
		if err != nil {
			return errf(lineNo, "Invalid word operand provided!")
		}
		appendTextChunks(obj, loc, hex6(int(v)&0xFFFFFF))

	case "BASE":
		if operand == nil {
			return errf(lineNo, "Invalid or no operand provided for directive.")
		}
		addr, ok := st.Lookup(*operand)
		if !ok {
			return errf(lineNo, "Base directive has invalid symbol!")
		}
		st.BaseRegisterAddress = addr

	case "END":
		if operand != nil {
			if _, ok := st.Lookup(*operand); !ok {
				return errf(lineNo, "End directive has invalid symbol!")
			}
		}

	case "START", "RESB", "RESW", "RESR", "EXPORTS":
		// No body.
	}
	return nil
}

// byteLiteralHex renders a BYTE operand's body as an uppercase hex
// string, left-padded with '0' to even length.
func byteLiteralHex(operand string) (string, error) {
	switch {
	case strings.HasPrefix(operand, "C'") && strings.HasSuffix(operand, "'"):
		body := strings.TrimSuffix(strings.TrimPrefix(operand, "C'"), "'")
		return padEven(strings.ToUpper(hex.EncodeToString([]byte(body)))), nil
	case strings.HasPrefix(operand, "X'") && strings.HasSuffix(operand, "'"):
		body := strings.TrimSuffix(strings.TrimPrefix(operand, "X'"), "'")
		return padEven(strings.ToUpper(body)), nil
	default:
		return "", errf(0, "invalid BYTE literal")
	}
}

func padEven(s string) string {
	if len(s)%2 != 0 {
		return "0" + s
	}
	return s
}

// appendTextChunks splits a hex body into consecutive Text records of at
// most 60 hex characters (30 bytes) each.
func appendTextChunks(obj *Object, addr int, hexBody string) {
	const maxChunk = 60
	for len(hexBody) > 0 {
		n := maxChunk
		if len(hexBody) < n {
			n = len(hexBody)
		}
		obj.Text = append(obj.Text, TextRecord{Address: addr, Body: hexBody[:n]})
		addr += n / 2
		hexBody = hexBody[n:]
	}
}
