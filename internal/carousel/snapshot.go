package carousel

import "time"

// SlideLayers are the tokens for one slide's layers.
type SlideLayers struct {
	Cover    LayerToken
	Float    LayerToken
	Content  LayerToken
	Children []LayerToken
}

// Snapshot is an immutable view of the carousel at one instant. It is the
// only thing a presentation layer needs.
type Snapshot struct {
	State    State
	Count    int
	Progress float64
	Deadline time.Time
	Running  bool
	Layers   []SlideLayers

	arena arena
}

// Snapshot copies the current state, progress and layer visuals.
func (o *Orchestrator) Snapshot(now time.Time) Snapshot {
	deadline, running := o.timer.Deadline()
	s := Snapshot{
		State:    o.State(),
		Count:    o.deck.Len(),
		Progress: o.timer.Progress(now),
		Deadline: deadline,
		Running:  running,
		Layers:   make([]SlideLayers, o.deck.Len()),
		arena:    o.layers.clone(),
	}
	for i := range s.Layers {
		kids := childRefs(i, len(o.layers.children[i]))
		toks := make([]LayerToken, len(kids))
		for j, r := range kids {
			toks[j] = LayerToken{ref: r, valid: true}
		}
		s.Layers[i] = SlideLayers{
			Cover:    LayerToken{ref: layerRef{slide: i, kind: LayerCover, child: -1}, valid: true},
			Float:    LayerToken{ref: layerRef{slide: i, kind: LayerFloat, child: -1}, valid: true},
			Content:  LayerToken{ref: layerRef{slide: i, kind: LayerContent, child: -1}, valid: true},
			Children: toks,
		}
	}
	return s
}

// Visual resolves tok against the snapshot. The zero LayerToken and tokens
// for unknown layers resolve to the zero Visual, which is invisible.
func (s Snapshot) Visual(tok LayerToken) Visual {
	r := tok.ref
	if !tok.valid || r.slide < 0 || r.slide >= len(s.arena.cover) {
		return Visual{}
	}
	if r.kind == LayerContent && r.child >= len(s.arena.children[r.slide]) {
		return Visual{}
	}
	a := s.arena
	if v := a.at(r); v != nil {
		return *v
	}
	return Visual{}
}

// Selected reports whether slide i is the settled active slide.
func (s Snapshot) Selected(i int) bool { return s.State.Active == i }
