package transform

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"image-transform-studio/internal/core"
)

var (
	errNoChannel      = errors.New("no channel selected")
	errUnknownChannel = errors.New("unknown channel")
	errNotNumber      = errors.New("not a number")
	errNotInteger     = errors.New("not an integer")
	errNegativeRadius = errors.New("radius must not be negative")
	errUnknownKind    = errors.New("unknown operation")
)

// Fields carries the raw text of the parameter entries.
type Fields struct {
	Channel string
	Angle   string
	X       string
	Y       string
	Radius  string
}

// ParseOperation validates the fields needed by kind and builds the Operation.
func ParseOperation(kind Kind, f Fields) (Operation, error) {
	switch kind {
	case KindNegative:
		return Negative(), nil
	case KindChannelIsolation:
		c, err := ParseChannel(f.Channel)
		if err != nil {
			return Operation{}, err
		}
		return IsolateChannel(c), nil
	case KindRotation:
		angle, err := ParseAngle(f.Angle)
		if err != nil {
			return Operation{}, err
		}
		return Rotate(angle), nil
	case KindCircle:
		x, err := ParseInt("x", f.X)
		if err != nil {
			return Operation{}, err
		}
		y, err := ParseInt("y", f.Y)
		if err != nil {
			return Operation{}, err
		}
		r, err := ParseInt("r", f.Radius)
		if err != nil {
			return Operation{}, err
		}
		if r < 0 {
			return Operation{}, &core.ParameterError{Field: "r", Value: f.Radius, Err: errNegativeRadius}
		}
		return Circle(x, y, r), nil
	default:
		return Operation{}, &core.ParameterError{Field: "operation", Value: kind.String(), Err: errUnknownKind}
	}
}

// ParseChannel accepts R, G, B or the full colour name in any case.
func ParseChannel(text string) (core.Channel, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "":
		return 0, &core.ParameterError{Field: "channel", Err: errNoChannel}
	case "r", "red":
		return core.Red, nil
	case "g", "green":
		return core.Green, nil
	case "b", "blue":
		return core.Blue, nil
	default:
		return 0, &core.ParameterError{Field: "channel", Value: text, Err: errUnknownChannel}
	}
}

// ParseAngle reads a rotation angle in degrees.
func ParseAngle(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &core.ParameterError{Field: "angle", Value: text, Err: errNotNumber}
	}
	if err := checkAngle(v); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseInt reads an integer pixel coordinate or length.
func ParseInt(field, text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &core.ParameterError{Field: field, Value: text, Err: errNotInteger}
	}
	return v, nil
}

func checkAngle(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &core.ParameterError{Field: "angle", Value: strconv.FormatFloat(v, 'g', -1, 64), Err: errNotNumber}
	}
	return nil
}
