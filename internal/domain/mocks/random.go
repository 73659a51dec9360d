package mocks

// Random is a scripted ports.Random. Floats and Ints are consumed in order;
// once a script runs out the matching Default value is returned. IntN
// results are reduced modulo n so scripts stay in range.
type Random struct {
	Floats       []float64
	Ints         []int
	DefaultFloat float64
	DefaultInt   int

	FloatCalls int
	IntCalls   int
}

// Float64 returns the next scripted float.
func (m *Random) Float64() float64 {
	m.FloatCalls++
	if len(m.Floats) == 0 {
		return m.DefaultFloat
	}
	f := m.Floats[0]
	m.Floats = m.Floats[1:]
	return f
}

// IntN returns the next scripted int modulo n.
func (m *Random) IntN(n int) int {
	m.IntCalls++
	v := m.DefaultInt
	if len(m.Ints) > 0 {
		v = m.Ints[0]
		m.Ints = m.Ints[1:]
	}
	return v % n
}
