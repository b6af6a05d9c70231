package options

// SectionEnum is a bit set selecting which report sections to render for a
// type.
type SectionEnum int

const (
	SectionClassification SectionEnum = 1 << iota // semantic shape flags (value semantics, tuple-like, record, ...)
	SectionMembers                                // comparable member catalog with value types and visibility
	SectionAnnotations                            // declared and inherited annotation records
	SectionConversions                            // user-defined conversion operators
	SectionDump                                   // raw metadata dump for debugging

	SectionAll  SectionEnum = (1 << iota) - 1 // all sections combined
	SectionNone SectionEnum = 0               // no sections selected
)

// Has reports whether the given section is selected.
func (s SectionEnum) Has(section SectionEnum) bool {
	return s&section != 0
}
