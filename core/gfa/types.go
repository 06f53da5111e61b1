package gfa

// SegmentRef names a segment. GFA files use either free-form names or
// non-negative integer ids; both are carried verbatim as the same key, so
// "7" in an S line and "7" in a step refer to the same segment.
type SegmentRef string

// Step is one oriented visit of a segment.
type Step struct {
	Ref     SegmentRef
	Reverse bool
}

// Kind records which record type produced a Path.
type Kind uint8

const (
	KindPath Kind = iota // P line, comma-delimited steps
	KindWalk             // W line, marker-delimited steps
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "P"
	case KindWalk:
		return "W"
	default:
		return "?"
	}
}

// Walk holds the identifying columns of a W line.
// Start and End are kept as written; "*" means unspecified.
type Walk struct {
	Sample    string
	Haplotype string
	Contig    string
	Start     string
	End       string
}

// Path is a named traversal. Name is derived once at parse time.
type Path struct {
	Name  string
	Kind  Kind
	Steps []Step
	Line  int   // 1-based line the record came from
	Walk  *Walk // nil for KindPath
}

// Graph is everything the resolver needs: a segment table and the paths in
// the order they appeared. It is not modified after Parse returns.
type Graph struct {
	Segments map[SegmentRef][]byte
	Paths    []Path
	Links    int // L records seen (validated, not stored)
}

// Bases returns the total segment length held by the table.
func (g *Graph) Bases() int {
	n := 0
	for _, s := range g.Segments {
		n += len(s)
	}
	return n
}
