package ansi

import "fmt"

// table is a map of ANSI control characters to their names.
// any unnamed characters will have hex value key.
var table = map[uint8]string{
	C0.NUL: "NUL", // Null
	0x01:   "SOH", // Start of Heading
	0x02:   "STX", // Start of Text
	0x03:   "ETX", // End of Text
	0x04:   "EOT", // End of Transmission
	0x05:   "ENQ", // Enquiry
	0x06:   "ACK", // Acknowledge
	C0.BEL: "BEL", // Bell
	C0.BS:  "BS",  // Backspace
	C0.HT:  "HT",  // Horizontal Tab
	C0.LF:  "LF",  // Line Feed
	C0.VT:  "VT",  // Vertical Tab
	C0.FF:  "FF",  // Form Feed
	C0.CR:  "CR",  // Carriage Return
	0x0E:   "SO",  // Shift Out
	0x0F:   "SI",  // Shift In
	0x18:   "CAN", // Cancel
	0x1A:   "SUB", // Substitute
	C0.ESC: "ESC", // Escape
	C0.DEL: "DEL", // Delete
}

// String names a control byte for log output.
func String(val uint8) string {
	if name, ok := table[val]; ok {
		return fmt.Sprintf("%s (0x%02X)", name, val)
	}
	return fmt.Sprintf("0x%02X (%q)", val, rune(val))
}
