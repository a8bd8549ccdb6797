package util

import (
	"fmt"
	"io"
	"strings"
)

// FormatHex renders data as space separated upper-case hex, e.g. "57 0F 47 01 01"
func FormatHex(data []byte) string {
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}

// GoLiteral renders data as a Go byte slice literal
func GoLiteral(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("0x%02X", b)
	}
	return "[]byte{" + strings.Join(parts, ", ") + "}"
}

// WriteHexDump writes data in hex dump format
func WriteHexDump(w io.Writer, data []byte) {
	for i := 0; i < len(data); i += 16 {
		// Address
		fmt.Fprintf(w, "%04x  ", i)

		// Hex bytes
		for j := 0; j < 16; j++ {
			if i+j < len(data) {
				fmt.Fprintf(w, "%02x ", data[i+j])
			} else {
				fmt.Fprint(w, "   ")
			}
			if j == 7 {
				fmt.Fprint(w, " ")
			}
		}

		// ASCII
		fmt.Fprint(w, " |")
		for j := 0; j < 16 && i+j < len(data); j++ {
			b := data[i+j]
			if b >= 32 && b < 127 {
				fmt.Fprintf(w, "%c", b)
			} else {
				fmt.Fprint(w, ".")
			}
		}
		fmt.Fprintln(w, "|")
	}
}
