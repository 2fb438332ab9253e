package app

import (
	"fmt"
	"strings"

	"chase-cover/internal/domain/entity"
)

// ComposeSummary текст письма в цех.
func ComposeSummary(pkg *entity.Package) string {
	o := pkg.Order
	var b strings.Builder

	b.WriteString("Chase Cover Measurements:\n\n")
	fmt.Fprintf(&b, "Project Name: %s\n", o.DisplayName())
	fmt.Fprintf(&b, "Length (Front to Back): %.1f inches\n", o.Panel.Length)
	fmt.Fprintf(&b, "Width (Left to Right): %.1f inches\n", o.Panel.Width)
	fmt.Fprintf(&b, "Outer flange length (turndown): %.1f inches\n", o.Panel.FlangeLength)
	if o.FitTolerance > 0 {
		fmt.Fprintf(&b, "Fit tolerance: %.2f inches\n", o.FitTolerance)
	}
	fmt.Fprintf(&b, "Add Kickout: %t\n", o.Panel.Kickout)
	fmt.Fprintf(&b, "Color: %s\n", o.ColorLabel())
	fmt.Fprintf(&b, "Spark Arrestor: %t", o.SparkArrestor)
	if o.SparkArrestor && strings.TrimSpace(o.SparkDetails) != "" {
		fmt.Fprintf(&b, " - Details: %s", strings.TrimSpace(o.SparkDetails))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Windband: %t\n", o.Windband)

	b.WriteString("Holes:\n")
	for _, h := range pkg.Holes {
		fmt.Fprintf(&b, "  Hole %d: Diameter=%.1f inches, Circumference=%.1f inches, Collar Height=%.1f inches\n",
			h.Index, h.Diameter, h.Circumference(), h.CollarHeight)
		for _, ed := range h.Distances.Ordered() {
			fmt.Fprintf(&b, "    Distance from %s: %.1f inches\n", ed.Edge.Title(), ed.Distance)
		}
	}

	if len(pkg.Warnings) > 0 {
		b.WriteString("Warnings:\n")
		for _, w := range pkg.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	notes := strings.TrimSpace(o.Notes)
	if notes == "" {
		notes = "None"
	}
	fmt.Fprintf(&b, "Additional Notes: %s\n", notes)
	return b.String()
}
