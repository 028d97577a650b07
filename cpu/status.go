package cpu

// Status is the control unit's current microcycle.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	ST_T0 = Status(0) // t0
	ST_T1 = Status(1) // t1
	ST_T2 = Status(2) // t2
	ST_T3 = Status(3) // t3
)

// Next applies the transition rule for one clock edge. T0 is the unique
// idle state; asserting done from any other state returns to T0.
func (st Status) Next(run, done bool) (next Status) {
	switch st {
	case ST_T0:
		next = ST_T0
		if run {
			next = ST_T1
		}
	case ST_T1:
		next = ST_T2
		if done {
			next = ST_T0
		}
	case ST_T2:
		next = ST_T3
		if done {
			next = ST_T0
		}
	default:
		next = ST_T3
		if done {
			next = ST_T0
		}
	}

	return
}
