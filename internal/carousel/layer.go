package carousel

// LayerKind names one of the per-slide animated layers. The fourth layer, the
// progress indicator, is driven by the Timer rather than the arena.
type LayerKind uint8

const (
	LayerCover LayerKind = iota
	LayerFloat
	LayerContent
)

func (k LayerKind) String() string {
	switch k {
	case LayerCover:
		return "cover"
	case LayerFloat:
		return "float"
	case LayerContent:
		return "content"
	}
	return "unknown"
}

// Visual is the animatable state of one layer or content child. X and Y are
// offsets in the same nominal pixel units as the choreography.
type Visual struct {
	Alpha float64
	X     float64
	Y     float64
}

// Visible reports whether the layer would paint anything.
func (v Visual) Visible() bool { return v.Alpha > 0.001 }

// LayerToken is an opaque handle into the layer arena. Resolve it with
// Snapshot.Visual. The zero LayerToken refers to nothing.
type LayerToken struct {
	ref   layerRef
	valid bool
}

func (t LayerToken) Kind() LayerKind { return t.ref.kind }

type layerRef struct {
	slide int
	kind  LayerKind
	child int // content child index, -1 for the block itself
}

// arena stores every layer's Visual indexed by slide. Only the Orchestrator
// writes to it.
type arena struct {
	cover    []Visual
	float    []Visual
	content  []Visual
	children [][]Visual
}

func newArena(d *Deck, c Choreography) arena {
	n := d.Len()
	a := arena{
		cover:    make([]Visual, n),
		float:    make([]Visual, n),
		content:  make([]Visual, n),
		children: make([][]Visual, n),
	}
	for i, s := range d.slides {
		a.children[i] = make([]Visual, s.ContentChildren())
		if i == 0 {
			a.cover[i] = Visual{Alpha: 1}
			a.float[i] = Visual{Alpha: 1}
			a.content[i] = Visual{Alpha: 1}
			for j := range a.children[i] {
				a.children[i][j] = Visual{Alpha: 1}
			}
			continue
		}
		a.float[i] = Visual{X: c.InFloatFromX}
		for j := range a.children[i] {
			a.children[i][j] = Visual{Alpha: 1}
		}
	}
	return a
}

func (a *arena) at(r layerRef) *Visual {
	switch r.kind {
	case LayerCover:
		return &a.cover[r.slide]
	case LayerFloat:
		return &a.float[r.slide]
	case LayerContent:
		if r.child < 0 {
			return &a.content[r.slide]
		}
		return &a.children[r.slide][r.child]
	}
	return nil
}

func (a *arena) clone() arena {
	out := arena{
		cover:    append([]Visual(nil), a.cover...),
		float:    append([]Visual(nil), a.float...),
		content:  append([]Visual(nil), a.content...),
		children: make([][]Visual, len(a.children)),
	}
	for i, kids := range a.children {
		out.children[i] = append([]Visual(nil), kids...)
	}
	return out
}

func childRefs(slide, count int) []layerRef {
	out := make([]layerRef, count)
	for i := range out {
		out[i] = layerRef{slide: slide, kind: LayerContent, child: i}
	}
	return out
}
