package rivers

// SinkType classifies the terminal water body of a river.
type SinkType uint8

const (
	SinkOcean SinkType = iota
	SinkLake
)

// String returns a human-readable name for the sink type.
func (s SinkType) String() string {
	switch s {
	case SinkOcean:
		return "ocean"
	case SinkLake:
		return "lake"
	default:
		return "unknown"
	}
}

// RiverPath is one committed river: the ordered cell sequence from the
// source cell to the sink cell. Immutable after creation.
type RiverPath struct {
	Cells       []int32
	Source      int32
	Sink        int32
	SinkType    SinkType
	Length      int
	Confluences int
	Tributary   bool
}

// Result is the output of one generation call.
type Result struct {
	Rivers    []RiverPath
	HasRiver  []byte  // 1 for every cell that appears in a committed path
	NewLakes  []int32 // cells promoted to lakes during generation
	Requested int
	Generated int // distinct (non-tributary) rivers committed
	Log       []string
}

// Shared tuning constants of the generator. These are fixed by the
// algorithm rather than exposed through Config.
const (
	// levelEps is the near-level band: neighbors within this elevation
	// delta count as flat rather than higher/lower.
	levelEps = 0.005

	// waterMargin rejects headwater candidates sitting within this
	// distance of the water threshold (unless lake-adjacent).
	waterMargin = 0.02

	// bandMinSpan is the minimum width of the headwater elevation band.
	bandMinSpan = 0.05

	// outletSlack is the extra elevation allowance when chaining a
	// trace through a lake outlet.
	outletSlack = 0.02

	// dropEps separates a real descent from a flat step.
	dropEps = 1e-9
)

// coastFar marks land cells with no all-land path to the ocean.
// Consumers treat it as a large constant, never as a hard constraint.
const coastFar = int32(1) << 29
