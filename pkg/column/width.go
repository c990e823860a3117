package column

// FallbackWidth is the default width, in pixels, for text, boolean, enum and
// any unrecognized type.
const FallbackWidth = 44

// DefaultWidth returns the default display width in pixels for a column type.
// Unknown types fall back to FallbackWidth.
func DefaultWidth(t Type) int {
	switch t {
	case Time, Timespan:
		return 80
	case Number, Currency:
		return 90
	case Date:
		return 130
	case Checkbox:
		return 80
	case Status:
		return 20
	default:
		return FallbackWidth
	}
}
