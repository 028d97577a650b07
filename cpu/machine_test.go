package cpu

import (
	"testing"

	"github.com/ezrec/kror/logic"
	"github.com/stretchr/testify/assert"
)

// feed runs one instruction through the machine with run asserted at T0,
// returning the snapshot of every tick until the instruction retires.
func feed(assert *assert.Assertions, m *Machine, code Code) (trace []Snapshot) {
	for tick := 0; ; tick++ {
		if !assert.Less(tick, 8, "instruction failed to retire") {
			return
		}

		run := false
		din := logic.NewWord(WORD_WIDTH, 0)
		switch {
		case m.Status == ST_T0:
			run = true
			din = code.Word
		case tick == 1 && code.Immediate != nil:
			din = *code.Immediate
		}

		done, err := m.Tick(run, din)
		if !assert.NoError(err) {
			return
		}

		trace = append(trace, m.Snapshot())
		if done {
			return
		}
	}
}

// mvi builds the code for loading an immediate into a register.
func mvi(reg RegisterID, value uint32) (code Code) {
	imm := logic.NewWord(WORD_WIDTH, value)

	return Code{
		Word:      MakeInstruction(OP_MVI, reg, REG_R0).Word(),
		Immediate: &imm,
	}
}

// checkOnehot asserts the latch-enable invariant over a whole trace.
func checkOnehot(assert *assert.Assertions, trace []Snapshot) {
	for n, snap := range trace {
		count := 0
		for _, enable := range snap.Signals.RegIn {
			if enable {
				count++
			}
		}
		assert.LessOrEqual(count, 1, "tick %v", n)
	}
}

// checkDoneOnce asserts done fires on exactly the final tick of a trace.
func checkDoneOnce(assert *assert.Assertions, trace []Snapshot) {
	for n, snap := range trace {
		assert.Equal(n == len(trace)-1, snap.Done, "tick %v", n)
	}
	assert.Equal(ST_T0, trace[len(trace)-1].Status)
}

func TestMvi(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMachine()
	assert.NoError(err)

	trace := feed(assert, m, mvi(REG_R2, 42))
	assert.Len(trace, 2)
	checkDoneOnce(assert, trace)
	checkOnehot(assert, trace)

	// Fetch cycle: bus unconstrained, instruction latched from din.
	assert.True(trace[0].BusUnconstrained)
	assert.True(trace[0].Signals.IRIn)
	assert.Equal(MakeInstruction(OP_MVI, REG_R2, REG_R0).Word(), trace[0].IR)

	// T1: din on the bus, latched into r2.
	assert.Equal(logic.NewWord(WORD_WIDTH, 42), trace[1].Bus)
	assert.False(trace[1].BusUnconstrained)
	assert.True(trace[1].Signals.RegIn[REG_R2])
	assert.Equal(logic.NewWord(WORD_WIDTH, 42), trace[1].R[REG_R2])
}

func TestMv(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMachine()
	assert.NoError(err)

	feed(assert, m, mvi(REG_R1, 7))

	trace := feed(assert, m, Code{Word: MakeInstruction(OP_MV, REG_R0, REG_R1).Word()})
	assert.Len(trace, 2)
	checkDoneOnce(assert, trace)
	checkOnehot(assert, trace)

	snap := trace[len(trace)-1]
	assert.Equal(logic.NewWord(WORD_WIDTH, 7), snap.R[REG_R0])
	assert.Equal(logic.NewWord(WORD_WIDTH, 7), snap.R[REG_R1])
	assert.Equal(logic.NewWord(WORD_WIDTH, 0), snap.R[REG_R2])
	assert.Equal(logic.NewWord(WORD_WIDTH, 0), snap.R[REG_R3])
}

func TestAddTrace(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMachine()
	assert.NoError(err)

	feed(assert, m, mvi(REG_R0, 5))
	feed(assert, m, mvi(REG_R1, 3))

	trace := feed(assert, m, Code{Word: MakeInstruction(OP_ADD, REG_R0, REG_R1).Word()})
	assert.Len(trace, 4)
	checkDoneOnce(assert, trace)
	checkOnehot(assert, trace)

	// T0: fetch, bus don't-care.
	assert.True(trace[0].BusUnconstrained)
	assert.True(trace[0].Signals.IRIn)

	// T1: r0 on the bus, buffered into A.
	assert.Equal(logic.NewWord(WORD_WIDTH, 5), trace[1].Bus)
	assert.True(trace[1].Signals.AIn)
	assert.Equal(logic.NewWord(WORD_WIDTH, 5), trace[1].A)

	// T2: r1 on the bus, sum latched into G.
	assert.Equal(logic.NewWord(WORD_WIDTH, 3), trace[2].Bus)
	assert.True(trace[2].Signals.GIn)
	assert.Equal(MODE_ADD, trace[2].Signals.Mode)
	assert.Equal(logic.NewWord(WORD_WIDTH, 8), trace[2].G)

	// T3: G on the bus, latched into r0.
	assert.Equal(logic.NewWord(WORD_WIDTH, 8), trace[3].Bus)
	assert.True(trace[3].Signals.RegIn[REG_R0])
	assert.Equal(logic.NewWord(WORD_WIDTH, 8), trace[3].R[REG_R0])
	assert.Equal(logic.NewWord(WORD_WIDTH, 3), trace[3].R[REG_R1])
}

func TestSub(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		a, b   uint32
		result uint32
	}){
		{"basic", 5, 3, 2},
		{"zero", 3, 3, 0},
		{"wraparound", 0, 1, 255},
	}

	for _, entry := range table {
		m, err := NewMachine()
		assert.NoError(err, entry.name)

		feed(assert, m, mvi(REG_R0, entry.a))
		feed(assert, m, mvi(REG_R1, entry.b))

		trace := feed(assert, m, Code{Word: MakeInstruction(OP_SUB, REG_R0, REG_R1).Word()})
		assert.Len(trace, 4, entry.name)
		checkDoneOnce(assert, trace)
		checkOnehot(assert, trace)

		assert.Equal(MODE_SUB, trace[2].Signals.Mode, entry.name)

		snap := trace[len(trace)-1]
		assert.Equal(logic.NewWord(WORD_WIDTH, entry.result), snap.R[REG_R0], entry.name)
		assert.Equal(logic.NewWord(WORD_WIDTH, entry.b), snap.R[REG_R1], entry.name)
	}
}

func TestIdle(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMachine()
	assert.NoError(err)

	// Without run the control unit stays in T0 and nothing latches.
	for range 4 {
		done, err := m.Tick(false, logic.NewWord(WORD_WIDTH, 0))
		assert.NoError(err)
		assert.False(done)
		assert.Equal(ST_T0, m.Status)
	}
}

func TestUndecodableHalts(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMachine()
	assert.NoError(err)

	// The bad word latches into IR at T0 and fails decode on the next
	// settle phase.
	bad := logic.NewWord(WORD_WIDTH, 0b1111_0000)
	done, err := m.Tick(true, bad)
	assert.NoError(err)
	assert.False(done)

	_, err = m.Tick(false, logic.NewWord(WORD_WIDTH, 0))
	assert.ErrorIs(err, ErrInstructionInvalid)
	assert.ErrorIs(err, logic.ErrUndecodable)
}

func TestIncompleteTableRejected(t *testing.T) {
	assert := assert.New(t)

	table := DefaultControlTable()
	delete(table[ST_T2], OP_SUB)

	_, err := NewMachineTable(table)
	assert.ErrorIs(err, ErrIncompleteTable)
}

func TestMachineReset(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMachine()
	assert.NoError(err)

	feed(assert, m, mvi(REG_R3, 99))
	m.Reset()

	assert.Equal(ST_T0, m.Status)
	assert.Equal(0, m.Ticks)
	for n := range m.R {
		assert.Equal(logic.NewWord(WORD_WIDTH, 0), m.R[n].Value())
	}
}
