// File: format.go
// Title: Quantity Formatting
// Description: String and fmt.Formatter support for Quantity and Value.
//              Verbs, width and precision apply to the count; the unit
//              symbol follows after a space.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package quantity

import (
	"fmt"

	"github.com/msto63/unitx/foundation/units/unit"
)

// Format implements fmt.Formatter: fmt.Sprintf("%.2f", q) gives "1.50 km"
func (q Quantity[D, U, R]) Format(f fmt.State, verb rune) {
	formatTo(f, verb, q.count, q.Unit())
}

// Format implements fmt.Formatter
func (v Value[R]) Format(f fmt.State, verb rune) {
	formatTo(f, verb, v.count, v.unit)
}

func formatTo(f fmt.State, verb rune, count any, u unit.Unit) {
	switch verb {
	case 's':
		verb = 'v'
	case 'v', 'd', 'b', 'o', 'x', 'X', 'e', 'E', 'f', 'F', 'g', 'G':
	default:
		fmt.Fprintf(f, "%%!%c(%v %s)", verb, count, u)
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), count)
	if s := u.String(); s != "" {
		fmt.Fprint(f, " ", s)
	}
}

func formatString(count any, u unit.Unit) string {
	if s := u.String(); s != "" {
		return fmt.Sprintf("%v %s", count, s)
	}
	return fmt.Sprint(count)
}
