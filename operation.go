package multicrc

import (
	"fmt"
	"strconv"
)

// Names of the MultiCRC operation arguments.
const (
	ArgInitialValue = "Initial Value"
	ArgPolynomial   = "Polynomial"
	ArgBits         = "Bits"
	ArgStartIndex   = "Start Index"
	ArgEndIndex     = "End Index"
)

// ArgType is the kind of value an operation argument takes.
type ArgType string

const (
	ArgNumber = ArgType("number")
	ArgOption = ArgType("option")
)

// ArgSpec describes a single operation argument.
type ArgSpec struct {
	Name    string
	Type    ArgType
	Default uint32
	// Options lists allowed values of an ArgOption argument. The first one is the default.
	Options []string
}

// Args is a parsed MultiCRC argument set.
type Args struct {
	InitialValue uint32
	Polynomial   uint32
	Bits         string
	StartIndex   int
	EndIndex     int
}

// Position is an inclusive range of byte offsets used for highlighting.
type Position struct {
	Start int
	End   int
}

// Operation is the configurable CRC calculator as exposed to a host pipeline.
type Operation struct {
	Name        string
	Description string
	InputType   string
	OutputType  string
	Args        []ArgSpec
}

// MultiCRC returns the operation descriptor.
func MultiCRC() *Operation {
	bits := make([]string, 0, 3)
	for _, w := range Widths() {
		bits = append(bits, w.String())
	}
	return &Operation{
		Name:        "MultiCRC",
		Description: "Configurable CRC Calculator",
		InputType:   "byteArray",
		OutputType:  "string",
		Args: []ArgSpec{
			{Name: ArgInitialValue, Type: ArgNumber, Default: 0x0000},
			{Name: ArgPolynomial, Type: ArgNumber, Default: 0x8408},
			{Name: ArgBits, Type: ArgOption, Options: bits},
			{Name: ArgStartIndex, Type: ArgNumber, Default: 0},
			{Name: ArgEndIndex, Type: ArgNumber, Default: 0},
		},
	}
}

// DefaultArgs returns arguments filled with the descriptor defaults.
func (op *Operation) DefaultArgs() Args {
	var a Args
	for _, spec := range op.Args {
		switch spec.Name {
		case ArgInitialValue:
			a.InitialValue = spec.Default
		case ArgPolynomial:
			a.Polynomial = spec.Default
		case ArgBits:
			if len(spec.Options) != 0 {
				a.Bits = spec.Options[0]
			}
		case ArgStartIndex:
			a.StartIndex = int(spec.Default)
		case ArgEndIndex:
			a.EndIndex = int(spec.Default)
		}
	}
	return a
}

// ParseArgs converts a named option set into Args. Missing options keep
// their defaults. Numbers may be decimal or prefixed with 0x.
func (op *Operation) ParseArgs(opts map[string]string) (Args, error) {
	a := op.DefaultArgs()
	for name, s := range opts {
		switch name {
		case ArgInitialValue, ArgPolynomial:
			v, err := strconv.ParseUint(s, 0, 32)
			if err != nil {
				return Args{}, fmt.Errorf("invalid %q value %q: %w", name, s, err)
			}
			if name == ArgInitialValue {
				a.InitialValue = uint32(v)
			} else {
				a.Polynomial = uint32(v)
			}
		case ArgBits:
			a.Bits = s
		case ArgStartIndex, ArgEndIndex:
			v, err := strconv.ParseInt(s, 0, 0)
			if err != nil {
				return Args{}, fmt.Errorf("invalid %q value %q: %w", name, s, err)
			}
			if name == ArgStartIndex {
				a.StartIndex = int(v)
			} else {
				a.EndIndex = int(v)
			}
		default:
			return Args{}, fmt.Errorf("unknown argument %q", name)
		}
	}
	return a, nil
}

// Run computes the checksum of input for the given arguments.
func (op *Operation) Run(input []byte, args Args) (string, error) {
	if args.EndIndex < args.StartIndex {
		return "", errEndBeforeStart()
	}
	if args.EndIndex-args.StartIndex+1 < MinRangeLength {
		return "", errRangeTooShort()
	}
	w, err := ParseWidth(args.Bits)
	if err != nil {
		return "", err
	}
	return ComputeCRC(input, w, args.InitialValue, args.Polynomial, args.StartIndex, args.EndIndex)
}

// Highlight maps input positions to output positions. The output covers
// the same bytes as the input.
func (op *Operation) Highlight(pos []Position, args Args) []Position {
	return pos
}

// HighlightReverse maps output positions back to input positions.
func (op *Operation) HighlightReverse(pos []Position, args Args) []Position {
	return pos
}
