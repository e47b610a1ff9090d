package analysis

import "strings"

// PathToASCII plots points on a width x height character grid. Screen
// coordinates grow downwards, so the top row holds the smallest Y.
func PathToASCII(points []Point, width, height int) string {
	if len(points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	rangeX := max(maxX-minX, 1e-9)
	rangeY := max(maxY-minY, 1e-9)

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	for i, p := range points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := int((p.Y - minY) / rangeY * float64(height-1))
		mark := '•'
		if i == 0 {
			mark = 'o'
		} else if i == len(points)-1 {
			mark = 'x'
		}
		grid[row][col] = mark
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
