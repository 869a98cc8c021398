package msdf

import "math"

// ColorEdgesSimple assigns edge colors so that every corner sits between
// two edges sharing only one channel. A junction between consecutive edges
// is a corner when the directions turn by more than angleThreshold radians
// away from a straight continuation. The seed picks among equivalent
// colorings; the same seed always yields the same colors.
//
// Contours without corners are colored white. A contour with a single
// corner (a teardrop) is spread over three colors, splitting edges when it
// has fewer than three.
func ColorEdgesSimple(shape *Shape, angleThreshold float64, seed uint64) {
	crossThreshold := math.Sin(angleThreshold)
	var corners []int

	for _, contour := range shape.Contours {
		n := len(contour.Edges)
		if n == 0 {
			continue
		}

		corners = corners[:0]
		prev := contour.Edges[n-1].DirectionAt(1)
		for i := range contour.Edges {
			e := &contour.Edges[i]
			if isCorner(prev.Normalized(), e.DirectionAt(0).Normalized(), crossThreshold) {
				corners = append(corners, i)
			}
			prev = e.DirectionAt(1)
		}

		switch len(corners) {
		case 0:
			for i := range contour.Edges {
				contour.Edges[i].Color = ColorWhite
			}
		case 1:
			colorTeardrop(contour, corners[0], &seed)
		default:
			colorCorners(contour, corners, &seed)
		}
	}
}

func isCorner(a, b Point, crossThreshold float64) bool {
	return a.Dot(b) <= 0 || math.Abs(a.Cross(b)) > crossThreshold
}

// switchColor moves color to a different two-channel color. When color
// shares exactly one channel with banned, the result avoids that channel.
func switchColor(color *EdgeColor, seed *uint64, banned EdgeColor) {
	combined := *color & banned
	if combined == ColorRed || combined == ColorGreen || combined == ColorBlue {
		*color = combined ^ ColorWhite
		return
	}
	if *color == ColorBlack || *color == ColorWhite {
		start := [3]EdgeColor{ColorCyan, ColorMagenta, ColorYellow}
		*color = start[*seed%3]
		*seed /= 3
		return
	}
	shifted := *color << (1 + (*seed & 1))
	*color = (shifted | shifted>>3) & ColorWhite
	*seed >>= 1
}

func colorTeardrop(contour *Contour, corner int, seed *uint64) {
	colors := [3]EdgeColor{ColorWhite, ColorWhite, ColorWhite}
	switchColor(&colors[0], seed, ColorBlack)
	colors[2] = colors[0]
	switchColor(&colors[2], seed, ColorBlack)

	m := len(contour.Edges)
	if m >= 3 {
		for i := 0; i < m; i++ {
			k := int(3+2.875*float64(i)/float64(m-1)-1.4375+0.5) - 2
			contour.Edges[(corner+i)%m].Color = colors[k]
		}
		return
	}

	// Fewer edges than colors: split into thirds so each color gets a run.
	var parts []Edge
	first := contour.Edges[0].SplitInThirds()
	if m == 1 {
		parts = first[:]
		for i := range parts {
			parts[i].Color = colors[i]
		}
	} else {
		second := contour.Edges[1].SplitInThirds()
		if corner == 0 {
			parts = append(first[:], second[:]...)
		} else {
			parts = append(second[:], first[:]...)
		}
		for i := range parts {
			parts[i].Color = colors[i/2]
		}
	}
	contour.Edges = parts
}

func colorCorners(contour *Contour, corners []int, seed *uint64) {
	m := len(contour.Edges)
	start := corners[0]
	spline := 0

	color := ColorWhite
	switchColor(&color, seed, ColorBlack)
	initial := color

	for i := 0; i < m; i++ {
		index := (start + i) % m
		if spline+1 < len(corners) && corners[spline+1] == index {
			spline++
			banned := ColorBlack
			if spline == len(corners)-1 {
				banned = initial
			}
			switchColor(&color, seed, banned)
		}
		contour.Edges[index].Color = color
	}
}
