package sicasm

// parsedLine is the shape a tokenized source line resolves to once the
// mnemonic/directive/label positions are determined. Both passes share
// this classifier so the two walks can never disagree about what a
// line means.
type parsedLine struct {
	Label   string
	Op      string
	Operand *string
}

// classifyLine applies the 1/2/3-field classification rules to a
// tokenized line, identifying the label (if any), the mnemonic or
// directive, and its operand (if any).
func classifyLine(tokens []string, lineNo int) (parsedLine, error) {
	switch len(tokens) {
	case 0:
		return parsedLine{}, errf(lineNo, "Empty line! Not allowed in SIC. Use comments instead (#)")

	case 1:
		tok := tokens[0]
		if !IsInstruction(tok) {
			return parsedLine{}, errf(lineNo, "Not an instruction!")
		}
		return parsedLine{Op: tok}, nil

	case 2:
		a, b := tokens[0], tokens[1]
		switch {
		case IsInstruction(a):
			return parsedLine{Op: a, Operand: &b}, nil
		case IsInstruction(b):
			return parsedLine{Label: a, Op: b}, nil
		case IsDirective(a):
			return parsedLine{Op: a, Operand: &b}, nil
		case IsDirective(b):
			return parsedLine{Label: a, Op: b}, nil
		default:
			return parsedLine{}, errf(lineNo, "Invalid line! Not an instruction or directive!")
		}

	case 3:
		a, b, c := tokens[0], tokens[1], tokens[2]
		switch {
		case IsInstruction(b), IsDirective(b):
			return parsedLine{Label: a, Op: b, Operand: &c}, nil
		default:
			return parsedLine{}, errf(lineNo, "Invalid line! Not an instruction or directive!")
		}

	default:
		return parsedLine{}, errf(lineNo, "Too many fields on line!")
	}
}
