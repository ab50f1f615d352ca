package gridgraph

// Zone is the 3×3 block of cells centered on a threat. It is derived on
// demand and never stored per cell; cells of the block may fall outside
// the grid, which is harmless since out-of-bounds cells are never enumerated.
type Zone struct {
	Center Cell
}

// ZoneOf returns the exclusion zone around threat.
func ZoneOf(threat Cell) Zone {
	return Zone{Center: threat}
}

// Contains reports whether c lies in the 3×3 block around z.Center.
// Complexity: O(1).
func (z Zone) Contains(c Cell) bool {
	return KingDistance(z.Center, c) <= 1
}

// Exclusion describes which cells an evading walker must not step onto:
// every cell inside any threat zone, except the explicitly allowed ones.
//
// The allowed cells (the walker's own position and its destination) keep the
// graph from being cut apart when a threat sits right next to either of them.
type Exclusion struct {
	zones   []Zone
	allowed []Cell
}

// NewExclusion builds an Exclusion from threat positions and the cells that
// stay enterable regardless of zones. The inputs are copied.
func NewExclusion(threats []Cell, allowed ...Cell) *Exclusion {
	ex := &Exclusion{
		zones:   make([]Zone, len(threats)),
		allowed: make([]Cell, len(allowed)),
	}
	for i, t := range threats {
		ex.zones[i] = ZoneOf(t)
	}
	copy(ex.allowed, allowed)

	return ex
}

// Excludes reports whether c may not be entered. A nil Exclusion excludes nothing.
// Complexity: O(A + Z) for A allowed cells and Z zones.
func (ex *Exclusion) Excludes(c Cell) bool {
	if ex == nil {
		return false
	}
	for _, a := range ex.allowed {
		if a == c {
			return false
		}
	}
	for _, z := range ex.zones {
		if z.Contains(c) {
			return true
		}
	}

	return false
}

// Zones returns a copy of the exclusion zones.
func (ex *Exclusion) Zones() []Zone {
	if ex == nil {
		return nil
	}
	out := make([]Zone, len(ex.zones))
	copy(out, ex.zones)

	return out
}
