package smartcab

// TrafficLight is the light at an intersection. At any time traffic on
// exactly one axis has a green light.
type TrafficLight struct {
	northSouth  bool // true if north-south traffic has a green light
	period      int
	lastUpdated int
}

// NewTrafficLight returns a new TrafficLight which switches every
// period ticks
func NewTrafficLight(northSouth bool, period int) *TrafficLight {
	return &TrafficLight{northSouth: northSouth, period: period}
}

// Update switches the light if at least one period has passed since
// the light last switched
func (l *TrafficLight) Update(t int) {
	if t-l.lastUpdated >= l.period {
		l.northSouth = !l.northSouth
		l.lastUpdated = t
	}
}

// Reset resets the light to the argument axis at time 0
func (l *TrafficLight) Reset(northSouth bool) {
	l.northSouth = northSouth
	l.lastUpdated = 0
}

// Green returns whether the light is green for traffic driving with
// heading h
func (l *TrafficLight) Green(h Heading) bool {
	return (l.northSouth && h.Vertical()) || (!l.northSouth && !h.Vertical())
}
