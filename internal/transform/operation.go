// Package transform implements the pixel transforms applied to the
// session image. Every transform returns a new image and leaves its
// input untouched.
package transform

import (
	"fmt"

	"image-transform-studio/internal/core"
)

// Kind selects which transform an Operation performs.
type Kind int

const (
	KindNegative Kind = iota
	KindChannelIsolation
	KindRotation
	KindCircle
)

// Kinds lists every operation in toolbar order.
var Kinds = []Kind{KindChannelIsolation, KindNegative, KindRotation, KindCircle}

func (k Kind) String() string {
	switch k {
	case KindNegative:
		return "Negative"
	case KindChannelIsolation:
		return "Channel"
	case KindRotation:
		return "Rotate"
	case KindCircle:
		return "Circle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Operation is a transform together with its parameters. Only the fields
// relevant to Kind are read.
type Operation struct {
	Kind    Kind
	Channel core.Channel
	Angle   float64
	X, Y    int
	Radius  int
}

func Negative() Operation {
	return Operation{Kind: KindNegative}
}

func IsolateChannel(c core.Channel) Operation {
	return Operation{Kind: KindChannelIsolation, Channel: c}
}

func Rotate(degrees float64) Operation {
	return Operation{Kind: KindRotation, Angle: degrees}
}

func Circle(x, y, radius int) Operation {
	return Operation{Kind: KindCircle, X: x, Y: y, Radius: radius}
}

// Title describes the operation for the result view.
func (op Operation) Title() string {
	switch op.Kind {
	case KindChannelIsolation:
		return fmt.Sprintf("Channel %s", op.Channel)
	case KindRotation:
		return fmt.Sprintf("Rotated %g°", op.Angle)
	case KindCircle:
		return fmt.Sprintf("Circle (%d, %d) r=%d", op.X, op.Y, op.Radius)
	default:
		return op.Kind.String()
	}
}

// Apply runs op against img and returns the result.
func Apply(img *core.Image, op Operation) (*core.Image, error) {
	if img.Empty() {
		return nil, core.ErrMissingImage
	}

	switch op.Kind {
	case KindNegative:
		return negative(img), nil
	case KindChannelIsolation:
		if !op.Channel.Valid() {
			return nil, &core.ParameterError{Field: "channel", Err: errNoChannel}
		}
		return isolateChannel(img, op.Channel), nil
	case KindRotation:
		if err := checkAngle(op.Angle); err != nil {
			return nil, err
		}
		return rotate(img, op.Angle), nil
	case KindCircle:
		if op.Radius < 0 {
			return nil, &core.ParameterError{Field: "r", Value: fmt.Sprint(op.Radius), Err: errNegativeRadius}
		}
		return drawCircle(img, op.X, op.Y, op.Radius), nil
	default:
		return nil, &core.ParameterError{Field: "operation", Value: op.Kind.String(), Err: errUnknownKind}
	}
}
