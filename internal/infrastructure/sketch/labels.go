package sketch

import (
	"fmt"
	"strings"

	"chase-cover/internal/domain/entity"
)

func titleLabel(d entity.Drawing) string {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = "Unnamed Project"
	}
	return "Chase Cover - " + title
}

// holeLabel строки подписи отверстия: диаметр и замеры.
func holeLabel(h entity.Hole) []string {
	lines := []string{fmt.Sprintf("H%d: D=%.1f", h.Index, h.Diameter)}
	for _, ed := range h.Distances.Ordered() {
		lines = append(lines, fmt.Sprintf("%s=%.1f", ed.Edge.Short(), ed.Distance))
	}
	return lines
}

func widthLabel(p entity.Panel) string  { return fmt.Sprintf("Width = %.1f", p.Width) }
func lengthLabel(p entity.Panel) string { return fmt.Sprintf("Length = %.1f", p.Length) }
func flangeLabel(p entity.Panel) string { return fmt.Sprintf("Flange = %.1f", p.FlangeLength) }
