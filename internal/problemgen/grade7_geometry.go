package problemgen

import (
	"fmt"

	"github.com/abhisek/middlemath/internal/sampler"
)

var grade7Geometry = TopicSet{
	Title: "Geometry",
	Generators: []Generator{
		angleRelationships,
		circleMeasures,
		triangleArea,
		prismVolume,
		scaleDrawing,
	},
}

func angleRelationships(s *sampler.Sampler) Problem {
	kind, total := "complementary", 90
	if s.Bool() {
		kind, total = "supplementary", 180
	}
	angle1 := s.Int(10, total-10)
	angle2 := total - angle1

	return Problem{
		Question: fmt.Sprintf("Two angles are %s. If one angle measures %d°, what is the measure of the other angle?", kind, angle1),
		Answer:   Number(float64(angle2)),
		Hint:     fmt.Sprintf("%s angles add up to %d°.", capitalize(kind), total),
		Solution: lines(
			fmt.Sprintf("%s angles sum to %d°.", capitalize(kind), total),
			fmt.Sprintf("Other angle = %d° - %d° = %d°", total, angle1, angle2),
		),
	}
}

func circleMeasures(s *sampler.Sampler) Problem {
	r := s.Int(3, 15)

	if s.Bool() {
		area := sampler.Round(piApprox*float64(r*r), 2)
		return Problem{
			Question: fmt.Sprintf("Find the area of a circle with radius %d cm. Use π ≈ 3.14.", r),
			Answer:   Number(area),
			Hint:     "Area of a circle = πr².",
			Solution: lines(
				"A = πr²",
				fmt.Sprintf("A = 3.14 × %d²", r),
				fmt.Sprintf("A = 3.14 × %d", r*r),
				fmt.Sprintf("A = %s cm²", num(area)),
			),
		}
	}
	circumference := sampler.Round(2*piApprox*float64(r), 2)
	return Problem{
		Question: fmt.Sprintf("Find the circumference of a circle with radius %d cm. Use π ≈ 3.14.", r),
		Answer:   Number(circumference),
		Hint:     "Circumference = 2πr.",
		Solution: lines(
			"C = 2πr",
			fmt.Sprintf("C = 2 × 3.14 × %d", r),
			fmt.Sprintf("C = %s cm", num(circumference)),
		),
	}
}

func triangleArea(s *sampler.Sampler) Problem {
	base := s.Int(4, 20)
	height := s.Int(3, 15)
	area := float64(base*height) / 2

	return Problem{
		Question: fmt.Sprintf("Find the area of a triangle with base %d m and height %d m.", base, height),
		Answer:   Number(area),
		Hint:     "Area of a triangle = ½ × base × height.",
		Solution: lines(
			"A = ½ × b × h",
			fmt.Sprintf("A = ½ × %d × %d", base, height),
			fmt.Sprintf("A = %s m²", num(area)),
		),
	}
}

func prismVolume(s *sampler.Sampler) Problem {
	l, w, h := s.Int(3, 12), s.Int(3, 12), s.Int(3, 12)
	volume := l * w * h

	return Problem{
		Question: fmt.Sprintf("Find the volume of a rectangular prism with length %d in, width %d in, and height %d in.", l, w, h),
		Answer:   Number(float64(volume)),
		Hint:     "Volume = length × width × height.",
		Solution: lines(
			"V = l × w × h",
			fmt.Sprintf("V = %d × %d × %d", l, w, h),
			fmt.Sprintf("V = %d in³", volume),
		),
	}
}

var drawingScales = []int{2, 3, 4, 5, 10, 20, 50}

func scaleDrawing(s *sampler.Sampler) Problem {
	k := sampler.MustChoice(s, drawingScales)
	drawn := s.Int(4, 20)
	actual := drawn * k

	return Problem{
		Question: fmt.Sprintf("A scale drawing uses a scale of 1:%d. A wall is %d cm long in the drawing. How long is the actual wall in cm?", k, drawn),
		Answer:   Number(float64(actual)),
		Hint:     "Each unit in the drawing stands for the scale factor in real life, so multiply.",
		Solution: lines(
			fmt.Sprintf("Scale 1:%d means 1 cm in the drawing is %d cm in real life.", k, k),
			fmt.Sprintf("Actual length = %d × %d = %d cm", drawn, k, actual),
		),
	}
}
