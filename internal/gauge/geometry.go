package gauge

import (
	"math"

	"breathalyzer.klederson.com/internal/config"
)

// AspectRatio corrects for terminal cells being about twice as tall as wide.
const AspectRatio = 0.5

// CellDistance computes the distance from a cell to the dial hub in column
// units, accounting for terminal aspect ratio.
func CellDistance(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / AspectRatio
	return math.Sqrt(dx*dx + dy*dy)
}

// CellAngle computes the dial angle of a cell in degrees, 0 = right,
// 90 = straight up, 180 = left. Cells below the hub return a negative angle.
func CellAngle(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(centerY-row) / AspectRatio
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// UpperHalf reports whether a dial angle lies on the visible arc, where
// sin(angle) >= 0.
func UpperHalf(deg float64) bool {
	return deg >= 0 && deg <= 180
}

// PolarToCell converts a dial angle and radius (column units) to a cell.
func PolarToCell(deg, radius float64, centerX, centerY int) (col, row int) {
	rad := deg * math.Pi / 180
	col = centerX + int(math.Round(radius*math.Cos(rad)))
	row = centerY - int(math.Round(radius*math.Sin(rad)*AspectRatio))
	return col, row
}

// CanvasToCell maps a point on the virtual canvas to a cell, scaling the
// canvas gauge radius onto the terminal dial radius around the hub.
func CanvasToCell(x, y, radius float64, centerX, centerY int) (col, row int) {
	scale := radius / config.GaugeRadius
	dx := (x - config.GaugeCenterX) * scale
	dy := (y - config.GaugeCenterY) * scale * AspectRatio
	return centerX + int(math.Round(dx)), centerY + int(math.Round(dy))
}

// TickAngle returns the angle of tick i of n+1 evenly spaced ticks,
// from 180 (i = 0) to 0 (i = n).
func TickAngle(i, n int) float64 {
	return 180 - float64(i)*180/float64(n)
}

// AngleDiff returns the absolute difference between two dial angles.
func AngleDiff(a, b float64) float64 {
	return math.Abs(a - b)
}
