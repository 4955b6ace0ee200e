package problemgen

import (
	"fmt"

	"github.com/abhisek/middlemath/internal/sampler"
)

var grade8Geometry = TopicSet{
	Title: "Geometry",
	Generators: []Generator{
		translatePoint,
		reflectPoint,
		rotatePoint,
		pythagorean,
		solidVolume,
	},
}

func point(x, y int) string {
	return fmt.Sprintf("(%d, %d)", x, y)
}

func moveText(n int, pos, neg string) string {
	unit := "units"
	if absInt(n) == 1 {
		unit = "unit"
	}
	dir := pos
	if n < 0 {
		dir = neg
	}
	return fmt.Sprintf("%d %s %s", absInt(n), unit, dir)
}

func translatePoint(s *sampler.Sampler) Problem {
	x, y := s.Int(-5, 5), s.Int(-5, 5)
	h, k := nonZero(s, -6, 6), nonZero(s, -6, 6)
	result := point(x+h, y+k)

	return Problem{
		Question: fmt.Sprintf("Translate the point %s %s and %s. What are the new coordinates?",
			point(x, y), moveText(h, "right", "left"), moveText(k, "up", "down")),
		Answer: Text(result),
		Hint:   "Add the horizontal shift to x and the vertical shift to y.",
		Solution: lines(
			fmt.Sprintf("New x = %d %s = %d", x, signed(h), x+h),
			fmt.Sprintf("New y = %d %s = %d", y, signed(k), y+k),
			fmt.Sprintf("%s → %s", point(x, y), result),
		),
	}
}

func reflectPoint(s *sampler.Sampler) Problem {
	x, y := nonZero(s, -8, 8), nonZero(s, -8, 8)

	var axis, rule string
	var rx, ry int
	switch s.Int(0, 2) {
	case 0:
		axis, rule, rx, ry = "the x-axis", "(x, y) → (x, -y)", x, -y
	case 1:
		axis, rule, rx, ry = "the y-axis", "(x, y) → (-x, y)", -x, y
	default:
		axis, rule, rx, ry = "the line y = x", "(x, y) → (y, x)", y, x
	}
	result := point(rx, ry)

	return Problem{
		Question: fmt.Sprintf("Reflect the point %s over %s. What are the new coordinates?", point(x, y), axis),
		Answer:   Text(result),
		Hint:     "Use the reflection rule for the line of reflection.",
		Solution: lines(
			"Rule: "+rule,
			fmt.Sprintf("%s → %s", point(x, y), result),
		),
	}
}

func rotatePoint(s *sampler.Sampler) Problem {
	x, y := nonZero(s, -8, 8), nonZero(s, -8, 8)

	var turn, rule string
	var rx, ry int
	switch s.Int(0, 2) {
	case 0:
		turn, rule, rx, ry = "90° clockwise", "(x, y) → (y, -x)", y, -x
	case 1:
		turn, rule, rx, ry = "90° counterclockwise", "(x, y) → (-y, x)", -y, x
	default:
		turn, rule, rx, ry = "180°", "(x, y) → (-x, -y)", -x, -y
	}
	result := point(rx, ry)

	return Problem{
		Question: fmt.Sprintf("Rotate the point %s %s about the origin. What are the new coordinates?", point(x, y), turn),
		Answer:   Text(result),
		Hint:     "Use the rotation rule for the angle and direction.",
		Solution: lines(
			"Rule: "+rule,
			fmt.Sprintf("%s → %s", point(x, y), result),
		),
	}
}

var pythagoreanTriples = [][3]int{
	{3, 4, 5}, {5, 12, 13}, {8, 15, 17}, {7, 24, 25}, {9, 12, 15}, {12, 16, 20},
}

func pythagorean(s *sampler.Sampler) Problem {
	t := sampler.MustChoice(s, pythagoreanTriples)
	a, b, c := t[0], t[1], t[2]

	if s.Bool() {
		return Problem{
			Question: fmt.Sprintf("A right triangle has legs of length %d and %d. Find the length of the hypotenuse.", a, b),
			Answer:   Number(float64(c)),
			Hint:     "Use a² + b² = c².",
			Solution: lines(
				"c² = a² + b²",
				fmt.Sprintf("c² = %d² + %d² = %d + %d = %d", a, b, a*a, b*b, c*c),
				fmt.Sprintf("c = √%d = %d", c*c, c),
			),
		}
	}
	return Problem{
		Question: fmt.Sprintf("A right triangle has a hypotenuse of %d and one leg of %d. Find the length of the other leg.", c, b),
		Answer:   Number(float64(a)),
		Hint:     "Use a² + b² = c² and solve for the missing leg.",
		Solution: lines(
			"a² = c² - b²",
			fmt.Sprintf("a² = %d² - %d² = %d - %d = %d", c, b, c*c, b*b, a*a),
			fmt.Sprintf("a = √%d = %d", a*a, a),
		),
	}
}

func solidVolume(s *sampler.Sampler) Problem {
	r := s.Int(2, 10)
	r2, r3 := float64(r*r), float64(r*r*r)

	switch s.Int(0, 2) {
	case 0:
		h := s.Int(3, 15)
		v := sampler.Round(piApprox*r2*float64(h), 2)
		return Problem{
			Question: fmt.Sprintf("Find the volume of a cylinder with radius %d cm and height %d cm. Use π ≈ 3.14.", r, h),
			Answer:   Number(v),
			Hint:     "Volume of a cylinder = πr²h.",
			Solution: lines(
				"V = πr²h",
				fmt.Sprintf("V = 3.14 × %d² × %d", r, h),
				fmt.Sprintf("V = %s cm³", num(v)),
			),
		}
	case 1:
		h := s.Int(3, 15)
		v := sampler.Round(piApprox*r2*float64(h)/3, 2)
		return Problem{
			Question: fmt.Sprintf("Find the volume of a cone with radius %d cm and height %d cm. Use π ≈ 3.14 and round to the nearest hundredth.", r, h),
			Answer:   Number(v),
			Hint:     "Volume of a cone = ⅓πr²h.",
			Solution: lines(
				"V = ⅓πr²h",
				fmt.Sprintf("V = ⅓ × 3.14 × %d² × %d", r, h),
				fmt.Sprintf("V ≈ %s cm³", num(v)),
			),
		}
	default:
		v := sampler.Round(4*piApprox*r3/3, 2)
		return Problem{
			Question: fmt.Sprintf("Find the volume of a sphere with radius %d cm. Use π ≈ 3.14 and round to the nearest hundredth.", r),
			Answer:   Number(v),
			Hint:     "Volume of a sphere = (4/3)πr³.",
			Solution: lines(
				"V = (4/3)πr³",
				fmt.Sprintf("V = (4/3) × 3.14 × %d³", r),
				fmt.Sprintf("V ≈ %s cm³", num(v)),
			),
		}
	}
}
