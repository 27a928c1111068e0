package schedule

import (
	"log"
	"sort"
	"time"

	"github.com/hray3182/FamilyBoard/internal/models"
)

// Display window defaults: 06:00-22:30 in 30 minute slots, 30px per slot
// (one pixel per minute). Blocks shorter than MinDuration minutes are drawn
// at MinDuration so a zero- or negative-duration entry stays clickable.
const (
	DefaultWindowStart = 6 * 60
	DefaultWindowEnd   = 22*60 + 30
	DefaultSlotMinutes = 30
	DefaultSlotPixels  = 30
	DefaultMinDuration = 15
)

// Options are the fixed display parameters of a grid layout.
type Options struct {
	WindowStart int // minutes of day where the ruler starts
	WindowEnd   int // minutes of day where the ruler ends, inclusive
	SlotMinutes int // ruler step and pixel-scaling denominator
	SlotPixels  int // rendered height of one slot
	MinDuration int // display floor for block duration, minutes
}

// DefaultOptions returns the 06:00-22:30 / 30 minute configuration.
func DefaultOptions() Options {
	return Options{
		WindowStart: DefaultWindowStart,
		WindowEnd:   DefaultWindowEnd,
		SlotMinutes: DefaultSlotMinutes,
		SlotPixels:  DefaultSlotPixels,
		MinDuration: DefaultMinDuration,
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.SlotMinutes <= 0 {
		o.SlotMinutes = def.SlotMinutes
	}
	if o.SlotPixels <= 0 {
		o.SlotPixels = def.SlotPixels
	}
	if o.MinDuration <= 0 {
		o.MinDuration = def.MinDuration
	}
	if o.WindowEnd <= o.WindowStart {
		o.WindowStart = def.WindowStart
		o.WindowEnd = def.WindowEnd
	}
	return o
}

func (o Options) pixelsPerMinute() float64 {
	return float64(o.SlotPixels) / float64(o.SlotMinutes)
}

// PlacedEvent is one block in a day column. Top and Height are pixels,
// linear in minutes: doubling the duration exactly doubles the height.
// Lane and LaneCount describe horizontal sub-positioning inside the column
// so overlapping blocks can share the width without collision.
type PlacedEvent struct {
	Event        *models.Event `json:"event"`
	StartMinutes int           `json:"start_minutes"`
	EndMinutes   int           `json:"end_minutes"`
	Top          float64       `json:"top"`
	Height       float64       `json:"height"`
	Lane         int           `json:"lane"`
	LaneCount    int           `json:"lane_count"`
}

// Column is one weekday of the grid.
type Column struct {
	Date   time.Time     `json:"date"`
	Events []PlacedEvent `json:"events"`
}

// GridLayout is the engine output, rebuilt from scratch on every render.
// List holds the same filtered events flat and chronologically, including
// ones whose clock strings failed to parse and were left off the grid.
type GridLayout struct {
	Window    Window          `json:"window"`
	TimeSlots []string        `json:"time_slots"`
	Columns   [7]Column       `json:"columns"`
	List      []*models.Event `json:"list"`
}

// BuildGrid lays the filtered week events out into a 7-column time grid.
// It is a pure function of its inputs: no wall-clock reads, no randomness,
// fresh output on every call, inputs never mutated. Malformed per-event data
// degrades that event only; the layout itself always succeeds.
func BuildGrid(events []*models.Event, window Window, opts Options) *GridLayout {
	opts = opts.normalized()

	grid := &GridLayout{Window: window, TimeSlots: timeSlots(opts)}
	for i := range grid.Columns {
		grid.Columns[i].Date = window.Day(i)
		grid.Columns[i].Events = []PlacedEvent{}
	}

	ppm := opts.pixelsPerMinute()
	for _, e := range events {
		day := window.DayIndex(e.Date)
		if day < 0 {
			// Upstream filtering should have caught this; drop rather than crash.
			log.Printf("schedule: event %d dated %s outside week window, dropped",
				e.EventID, e.Date.Format("2006-01-02"))
			continue
		}

		start, okStart := ParseClock(e.StartTime)
		end, okEnd := ParseClock(e.EndTime)
		if !okStart || !okEnd {
			// Stays in the flat list, just not on the grid.
			continue
		}

		startMin := start.Minutes()
		endMin := end.Minutes()
		duration := endMin - startMin
		if duration < opts.MinDuration {
			duration = opts.MinDuration
		}
		offset := startMin - opts.WindowStart
		if offset < 0 {
			offset = 0
		}

		grid.Columns[day].Events = append(grid.Columns[day].Events, PlacedEvent{
			Event:        e,
			StartMinutes: startMin,
			EndMinutes:   startMin + duration,
			Top:          float64(offset) * ppm,
			Height:       float64(duration) * ppm,
		})
	}

	for i := range grid.Columns {
		assignLanes(grid.Columns[i].Events)
	}

	grid.List = chronological(events)
	return grid
}

// timeSlots renders the ruler labels from WindowStart to WindowEnd inclusive.
// The ruler is purely visual; it does not restrict event placement.
func timeSlots(opts Options) []string {
	var out []string
	for m := opts.WindowStart; m <= opts.WindowEnd; m += opts.SlotMinutes {
		out = append(out, ClockFromMinutes(m).String())
	}
	return out
}

// assignLanes places overlapping blocks of one column side by side. Blocks
// are processed in (start, id) order; each takes the lowest lane whose last
// occupant has ended. LaneCount is the lane total of the block's overlap
// cluster so the renderer can divide the column width evenly. Two blocks
// with identical intervals always land in distinct lanes.
func assignLanes(col []PlacedEvent) {
	if len(col) == 0 {
		return
	}

	sort.SliceStable(col, func(i, j int) bool {
		if col[i].StartMinutes != col[j].StartMinutes {
			return col[i].StartMinutes < col[j].StartMinutes
		}
		return col[i].Event.EventID < col[j].Event.EventID
	})

	var laneEnds []int
	clusterStart := 0
	clusterMaxEnd := 0

	closeCluster := func(upTo int) {
		count := len(laneEnds)
		for k := clusterStart; k < upTo; k++ {
			col[k].LaneCount = count
		}
	}

	for i := range col {
		if i > 0 && col[i].StartMinutes >= clusterMaxEnd {
			closeCluster(i)
			laneEnds = laneEnds[:0]
			clusterStart = i
		}

		lane := -1
		for l, end := range laneEnds {
			if end <= col[i].StartMinutes {
				lane = l
				break
			}
		}
		if lane < 0 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, 0)
		}
		laneEnds[lane] = col[i].EndMinutes
		col[i].Lane = lane

		if col[i].EndMinutes > clusterMaxEnd {
			clusterMaxEnd = col[i].EndMinutes
		}
	}
	closeCluster(len(col))
}

// chronological sorts a copy of the events by (date, start minutes, id).
// Events whose start fails to parse sort after the valid ones of their day.
func chronological(events []*models.Event) []*models.Event {
	out := make([]*models.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Day(), out[j].Day()
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		mi, mj := startSortKey(out[i]), startSortKey(out[j])
		if mi != mj {
			return mi < mj
		}
		return out[i].EventID < out[j].EventID
	})
	return out
}

func startSortKey(e *models.Event) int {
	c, ok := ParseClock(e.StartTime)
	if !ok {
		return 24 * 60
	}
	return c.Minutes()
}
