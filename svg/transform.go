package svg

import (
	"fmt"
	"math"
	"strings"

	"honnef.co/go/svg2pts/geom"
)

const deg2rad = math.Pi / 180

// ParseTransform parses a transform attribute value: a list of transform
// functions, applied left to right. Angles are in degrees.
func ParseTransform(s string) (geom.Affine, error) {
	xf := geom.Identity
	rest := strings.TrimSpace(s)
	for rest != "" {
		name, args, ok := strings.Cut(rest, "(")
		if !ok {
			return geom.Affine{}, fmt.Errorf("svg: malformed transform %q", s)
		}
		args, rest, ok = strings.Cut(args, ")")
		if !ok {
			return geom.Affine{}, fmt.Errorf("svg: unterminated transform function in %q", s)
		}
		nums, err := parseNumberList(args)
		if err != nil {
			return geom.Affine{}, err
		}

		var fn geom.Affine
		switch name = strings.TrimSpace(name); name {
		case "matrix":
			if len(nums) != 6 {
				return geom.Affine{}, transformArityErr(name, nums)
			}
			fn = geom.Affine{N0: nums[0], N1: nums[1], N2: nums[2], N3: nums[3], N4: nums[4], N5: nums[5]}
		case "translate":
			switch len(nums) {
			case 1:
				fn = geom.Translate(geom.Vec(nums[0], 0))
			case 2:
				fn = geom.Translate(geom.Vec(nums[0], nums[1]))
			default:
				return geom.Affine{}, transformArityErr(name, nums)
			}
		case "scale":
			switch len(nums) {
			case 1:
				fn = geom.Scale(nums[0], nums[0])
			case 2:
				fn = geom.Scale(nums[0], nums[1])
			default:
				return geom.Affine{}, transformArityErr(name, nums)
			}
		case "rotate":
			switch len(nums) {
			case 1:
				fn = geom.Rotate(nums[0] * deg2rad)
			case 3:
				fn = geom.RotateAbout(nums[0]*deg2rad, geom.Pt(nums[1], nums[2]))
			default:
				return geom.Affine{}, transformArityErr(name, nums)
			}
		case "skewX":
			if len(nums) != 1 {
				return geom.Affine{}, transformArityErr(name, nums)
			}
			fn = geom.Skew(math.Tan(nums[0]*deg2rad), 0)
		case "skewY":
			if len(nums) != 1 {
				return geom.Affine{}, transformArityErr(name, nums)
			}
			fn = geom.Skew(0, math.Tan(nums[0]*deg2rad))
		default:
			return geom.Affine{}, fmt.Errorf("svg: unknown transform function %q", name)
		}

		// strconv accepts "NaN" as a number; an affine with NaN coefficients
		// would silently poison every coordinate it touches.
		if fn.IsNaN() {
			return geom.Affine{}, fmt.Errorf("svg: NaN argument in transform function %s", name)
		}

		xf = xf.Mul(fn)
		rest = strings.TrimSpace(rest)
		rest = strings.TrimPrefix(rest, ",")
		rest = strings.TrimSpace(rest)
	}
	return xf, nil
}

func transformArityErr(name string, nums []float64) error {
	return fmt.Errorf("svg: transform function %s does not take %d arguments", name, len(nums))
}
