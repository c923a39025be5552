package base

import (
	"errors"
	"fmt"
	"strings"
)

// PropertyRotationAngle is the only property the built-in spin animations drive.
const PropertyRotationAngle string = "rotationAngle"

var (
	ErrUnknownOrientation    = errors.New("unknown text orientation")
	ErrUnknownAlignment      = errors.New("unknown text alignment")
	ErrUnknownDirection      = errors.New("unknown text direction")
	ErrUnknownDrawMode       = errors.New("unknown draw mode")
	ErrUnknownImageDirection = errors.New("unknown image direction")
	ErrUnknownAnimationType  = errors.New("unknown animation type")
	ErrUnknownSpinDirection  = errors.New("unknown spin direction")
	ErrUnknownSoundTrigger   = errors.New("unknown sound trigger")
	ErrUnknownEasing         = errors.New("unknown easing")
	ErrUnknownProperty       = errors.New("unknown animated property")
	ErrImageNotLoaded        = errors.New("image not loaded")
	ErrSegmentOutOfRange     = errors.New("segment out of range")
	ErrNoDriver              = errors.New("no animation driver")
)

// Span is the [Start, End) slice of the wheel a segment owns, in wheel-space degrees.
type Span struct {
	Start float64
	End   float64
}

// Mid is the angle halfway through the span.
func (s Span) Mid() float64 {
	return s.Start + (s.End-s.Start)/2
}

func (s Span) Size() float64 {
	return s.End - s.Start
}

// Contains is inclusive on both ends.
func (s Span) Contains(angle float64) bool {
	return angle >= s.Start && angle <= s.End
}

// ---- Text ----

type Orientation uint8

const (
	Horizontal Orientation = 1
	Vertical   Orientation = 2
	Curved     Orientation = 3
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Curved:
		return "curved"
	default:
		return "invalid"
	}
}

func OrientationFromString(s string) (Orientation, error) {
	switch norm(s) {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	case "curved":
		return Curved, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}

type Alignment uint8

const (
	AlignInner  Alignment = 1
	AlignOuter  Alignment = 2
	AlignCenter Alignment = 3
)

func (a Alignment) String() string {
	switch a {
	case AlignInner:
		return "inner"
	case AlignOuter:
		return "outer"
	case AlignCenter:
		return "center"
	default:
		return "invalid"
	}
}

func AlignmentFromString(s string) (Alignment, error) {
	switch norm(s) {
	case "inner":
		return AlignInner, nil
	case "outer":
		return AlignOuter, nil
	case "center", "centre":
		return AlignCenter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

type Direction uint8

const (
	Normal   Direction = 1
	Reversed Direction = 2
)

func (d Direction) String() string {
	switch d {
	case Normal:
		return "normal"
	case Reversed:
		return "reversed"
	default:
		return "invalid"
	}
}

func DirectionFromString(s string) (Direction, error) {
	switch norm(s) {
	case "normal":
		return Normal, nil
	case "reversed":
		return Reversed, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// TextAlign and TextBaseline mirror the anchor settings of a 2D canvas.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = 1
	TextAlignCenter TextAlign = 2
	TextAlignRight  TextAlign = 3
)

type TextBaseline uint8

const (
	BaselineAlphabetic TextBaseline = 0
	BaselineTop        TextBaseline = 1
	BaselineMiddle     TextBaseline = 2
	BaselineBottom     TextBaseline = 3
)

// ---- Drawing ----

type DrawMode uint8

const (
	DrawCode         DrawMode = 1
	DrawImage        DrawMode = 2
	DrawSegmentImage DrawMode = 3
)

func (m DrawMode) String() string {
	switch m {
	case DrawCode:
		return "code"
	case DrawImage:
		return "image"
	case DrawSegmentImage:
		return "segmentImage"
	default:
		return "invalid"
	}
}

func DrawModeFromString(s string) (DrawMode, error) {
	switch norm(s) {
	case "code":
		return DrawCode, nil
	case "image":
		return DrawImage, nil
	case "segmentimage":
		return DrawSegmentImage, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDrawMode, s)
}

// ImageDirection is the compass side a segment bitmap faces before rotation.
type ImageDirection uint8

const (
	FacingN ImageDirection = 1
	FacingS ImageDirection = 2
	FacingE ImageDirection = 3
	FacingW ImageDirection = 4
)

func (d ImageDirection) String() string {
	switch d {
	case FacingN:
		return "N"
	case FacingS:
		return "S"
	case FacingE:
		return "E"
	case FacingW:
		return "W"
	default:
		return "invalid"
	}
}

func ImageDirectionFromString(s string) (ImageDirection, error) {
	switch norm(s) {
	case "n":
		return FacingN, nil
	case "s":
		return FacingS, nil
	case "e":
		return FacingE, nil
	case "w":
		return FacingW, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownImageDirection, s)
}

// ---- Animation ----

type AnimationType uint8

const (
	SpinOngoing AnimationType = 1
	SpinToStop  AnimationType = 2
	SpinAndBack AnimationType = 3
	Custom      AnimationType = 4
)

func (t AnimationType) String() string {
	switch t {
	case SpinOngoing:
		return "spinOngoing"
	case SpinToStop:
		return "spinToStop"
	case SpinAndBack:
		return "spinAndBack"
	case Custom:
		return "custom"
	default:
		return "invalid"
	}
}

func AnimationTypeFromString(s string) (AnimationType, error) {
	switch norm(s) {
	case "spinongoing":
		return SpinOngoing, nil
	case "spintostop":
		return SpinToStop, nil
	case "spinandback":
		return SpinAndBack, nil
	case "custom":
		return Custom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAnimationType, s)
}

type SpinDirection uint8

const (
	Clockwise     SpinDirection = 1
	AntiClockwise SpinDirection = 2
)

func (d SpinDirection) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case AntiClockwise:
		return "anti-clockwise"
	default:
		return "invalid"
	}
}

func SpinDirectionFromString(s string) (SpinDirection, error) {
	switch norm(s) {
	case "clockwise":
		return Clockwise, nil
	case "anti-clockwise", "anticlockwise", "counter-clockwise":
		return AntiClockwise, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSpinDirection, s)
}

// SoundTrigger picks what crossing the pointer makes a sound: segment edges or pins.
type SoundTrigger uint8

const (
	TriggerSegment SoundTrigger = 1
	TriggerPin     SoundTrigger = 2
)

func SoundTriggerFromString(s string) (SoundTrigger, error) {
	switch norm(s) {
	case "segment":
		return TriggerSegment, nil
	case "pin":
		return TriggerPin, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSoundTrigger, s)
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
