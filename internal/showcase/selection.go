package showcase

import "log"

// Render depths for the two highlight states.
const (
	DepthDeselected = 0.0
	DepthSelected   = 100.0
)

// Label prefixes.
const (
	TitlePrefix    = "Contributor showcase"
	SelectedPrefix = "Contributor: "
)

// Entry pairs a name with the body that shows it.
type Entry struct {
	Name string
	Body BodyID
}

// Roster is the selection order. It is shuffled once at creation and is
// independent of spawn order.
type Roster []Entry

// Label is the two-segment text shown under the bodies.
type Label struct {
	Prefix string
	Name   string
	Color  HSLA // Colour of the name segment
}

// String joins both segments.
func (l Label) String() string {
	return l.Prefix + l.Name
}

// Timer is a repeating countdown. It fires at most once per Tick and
// discards any overshoot when it does.
type Timer struct {
	Interval float64
	Elapsed  float64
}

// Tick advances the timer by dt seconds and reports whether it fired.
func (t *Timer) Tick(dt float64) bool {
	t.Elapsed += dt
	if t.Elapsed < t.Interval {
		return false
	}
	t.Elapsed = 0
	return true
}

// Scheduler cycles the highlight through the roster on a fixed interval.
// It is the only writer of Cursor and Label.
type Scheduler struct {
	Cursor int
	Timer  Timer
	Label  Label

	selected Entry
	active   bool // selected holds a body that was actually highlighted
}

// NewScheduler returns a scheduler at cursor 0 with nothing selected.
func NewScheduler(interval float64) Scheduler {
	return Scheduler{
		Timer: Timer{Interval: interval},
		Label: Label{Prefix: TitlePrefix, Color: White},
	}
}

// Update ticks the timer and advances the selection when it fires.
func (s *Scheduler) Update(dt float64, store *Store, roster Roster) bool {
	if !s.Timer.Tick(dt) {
		return false
	}
	s.Advance(store, roster)
	return true
}

// Advance deselects the body under the cursor, moves the cursor forward
// with wraparound, and selects the next body. On the very first advance
// the body at index 0 is deselected although it was never selected; that
// is a no-op on its state.
func (s *Scheduler) Advance(store *Store, roster Roster) {
	if len(roster) == 0 {
		return
	}
	prev := s.Cursor
	if prev+1 < len(roster) {
		s.Cursor = prev + 1
	} else {
		s.Cursor = 0
	}
	s.active = false

	deselect(store, roster[prev])
	s.selectEntry(store, roster[s.Cursor])
}

// Selected returns the highlighted entry, or false when no body is
// highlighted: before the first advance, or after a skipped select.
func (s *Scheduler) Selected() (Entry, bool) {
	if !s.active {
		return Entry{}, false
	}
	return s.selected, true
}

// selectEntry switches the body to the vivid colour, brings it to the front
// and shows its name.
func (s *Scheduler) selectEntry(store *Store, e Entry) {
	b, ok := store.Get(e.Body)
	if !ok {
		log.Printf("showcase: select %q: body %d does not resolve", e.Name, e.Body)
		return
	}
	b.Color = SelectedColor(b.Hue)
	b.Depth = DepthSelected

	s.Label = Label{Prefix: SelectedPrefix, Name: e.Name, Color: b.Color}
	s.selected, s.active = e, true
}

// deselect switches the body back to the dim colour and pushes it to the back.
func deselect(store *Store, e Entry) {
	b, ok := store.Get(e.Body)
	if !ok {
		log.Printf("showcase: deselect %q: body %d does not resolve", e.Name, e.Body)
		return
	}
	b.Color = DeselectedColor(b.Hue)
	b.Depth = DepthDeselected
}
