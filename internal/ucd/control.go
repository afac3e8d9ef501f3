package ucd

// Delete is the DELETE code point, the only ASCII control outside C0.
const Delete = 0x7F

// controlNames holds the full names of the ASCII control characters.
var controlNames = map[rune]string{
	0:   "NULL",
	1:   "START OF HEADING",
	2:   "START OF TEXT",
	3:   "END OF TEXT",
	4:   "END OF TRANSMISSION",
	5:   "ENQUIRY",
	6:   "ACKNOWLEDGE",
	7:   "BELL",
	8:   "BACKSPACE",
	9:   "HORIZONTAL TABULATION",
	10:  "LINE FEED",
	11:  "VERTICAL TABULATION",
	12:  "FORM FEED",
	13:  "CARRIAGE RETURN",
	14:  "SHIFT OUT",
	15:  "SHIFT IN",
	16:  "DATA LINK ESCAPE",
	17:  "DEVICE CONTROL ONE",
	18:  "DEVICE CONTROL TWO",
	19:  "DEVICE CONTROL THREE",
	20:  "DEVICE CONTROL FOUR",
	21:  "NEGATIVE ACKNOWLEDGE",
	22:  "SYNCHRONOUS IDLE",
	23:  "END OF TRANSMISSION BLOCK",
	24:  "CANCEL",
	25:  "END OF MEDIUM",
	26:  "SUBSTITUTE",
	27:  "ESCAPE",
	28:  "FILE SEPARATOR",
	29:  "GROUP SEPARATOR",
	30:  "RECORD SEPARATOR",
	31:  "UNIT SEPARATOR",
	127: "DELETE",
}

// controlAbbrevs holds the mnemonic abbreviations of the ASCII control characters.
var controlAbbrevs = map[rune]string{
	0:   "NUL",
	1:   "SOH",
	2:   "STX",
	3:   "ETX",
	4:   "EOT",
	5:   "ENQ",
	6:   "ACK",
	7:   "BEL",
	8:   "BS",
	9:   "HT",
	10:  "LF",
	11:  "VT",
	12:  "FF",
	13:  "CR",
	14:  "SO",
	15:  "SI",
	16:  "DLE",
	17:  "DC1",
	18:  "DC2",
	19:  "DC3",
	20:  "DC4",
	21:  "NAK",
	22:  "SYN",
	23:  "ETB",
	24:  "CAN",
	25:  "EM",
	26:  "SUB",
	27:  "ESC",
	28:  "FS",
	29:  "GS",
	30:  "RS",
	31:  "US",
	127: "DEL",
}

// Control is one row of the ASCII control table.
type Control struct {
	CP     rune
	Abbrev string
	Name   string
}

// IsASCIIControl reports whether r is one of the 33 ASCII control code points.
func IsASCIIControl(r rune) bool {
	return (r >= 0 && r <= 31) || r == Delete
}

// ControlName returns the full name of an ASCII control character.
func ControlName(r rune) (string, bool) {
	name, ok := controlNames[r]
	return name, ok
}

// ControlAbbrev returns the mnemonic abbreviation of an ASCII control character.
func ControlAbbrev(r rune) (string, bool) {
	abbrev, ok := controlAbbrevs[r]
	return abbrev, ok
}

// ASCIIControlName returns the bracketed display name, e.g. "<ASCII CONTROL CHARACTER LINE FEED>".
func ASCIIControlName(r rune) (string, bool) {
	name, ok := controlNames[r]
	if !ok {
		return "", false
	}
	return "<ASCII CONTROL CHARACTER " + name + ">", true
}

// Controls returns the ASCII control table in code point order.
func Controls() []Control {
	out := make([]Control, 0, len(controlNames))
	for r := rune(0); r <= Delete; r++ {
		if !IsASCIIControl(r) {
			continue
		}
		out = append(out, Control{CP: r, Abbrev: controlAbbrevs[r], Name: controlNames[r]})
	}
	return out
}
