package machine

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/norma/norma"
)

func doLoad(program []string, t *testing.T) *norma.Program {
	parser := &norma.Parser{}
	prog, diags, err := parser.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.Empty(t, diags)
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestMachine(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(doLoad([]string{"3: faca add A va_para 4"}, t))

	assert.False(m.Verbose)
	assert.Equal(3, m.Counter)
	assert.False(m.Halted)
	assert.Equal(0, m.Steps)

	inst, ok := m.Instruction()
	assert.True(ok)
	assert.Equal(norma.Increment{Reg: "A", Next: 4}, inst)

	assert.True(m.Tick())
	assert.True(m.Halted)
	assert.Equal(4, m.Counter)
	assert.Equal(1, m.Steps)
	assert.Equal(uint64(1), m.Registers.Get("A"))

	// Halted machines do not advance.
	assert.True(m.Tick())
	assert.Equal(1, m.Steps)

	m.Reset()
	assert.False(m.Halted)
	assert.Equal(3, m.Counter)
	assert.Equal(0, m.Steps)
	assert.Equal(uint64(1), m.Registers.Get("A"))
}

func TestMachineInit(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(doLoad([]string{"0: faca add A va_para 1"}, t))

	diags := m.Init(map[string]string{"a": "5", "Z": "3", "B": "oops"})
	assert.Len(diags, 2)
	assert.Equal([]uint64{5, 0, 0, 0, 0}, m.Registers.Values(norma.DisplayNames...))
	assert.False(m.Registers.Has("Z"))
}

func TestMachineTrace(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"0: se zero B entao va_para 3 senao va_para 1",
		"1: faca sub B va_para 2",
		"2: faca add A va_para 0",
	}

	m := NewMachine(doLoad(program, t))
	m.Init(map[string]string{"A": "1", "B": "2"})

	trace := slices.Collect(m.Trace())

	// entry, 7 instructions, end
	assert.Len(trace, 9)

	entry := trace[0]
	assert.Equal(PHASE_ENTRY, entry.Phase)
	assert.Equal(0, entry.Counter)
	assert.Equal([]uint64{1, 2, 0, 0, 0}, entry.Registers)
	assert.Nil(entry.Instruction)
	assert.Nil(entry.Bank)

	first := trace[1]
	assert.Equal(PHASE_STEP, first.Phase)
	assert.Equal(0, first.Steps)
	assert.Equal(0, first.Counter)
	assert.Equal(norma.BranchIfZero{Reg: "B", IfZero: 3, IfNonZero: 1}, first.Instruction)

	labels := []int{}
	for _, snap := range trace[1:8] {
		assert.Equal(PHASE_STEP, snap.Phase)
		labels = append(labels, snap.Counter)
	}
	assert.Equal([]int{0, 1, 2, 0, 1, 2, 0}, labels)

	end := trace[8]
	assert.Equal(PHASE_END, end.Phase)
	assert.Equal(7, end.Steps)
	assert.Equal(3, end.Counter)
	assert.Equal([]uint64{3, 0, 0, 0, 0}, end.Registers)
	assert.Nil(end.Instruction)
	assert.NotNil(end.Bank)
	assert.Equal(uint64(3), end.Bank.Get("A"))
	assert.Equal("A=3 B=0 C=0 D=0 E=0 F=0 G=0 H=0", end.Bank.String())
}

func TestMachineTrace_Immediate(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(doLoad([]string{"0: faca add A va_para 99"}, t))

	trace := slices.Collect(m.Trace())
	assert.Len(trace, 3)
	assert.Equal(PHASE_ENTRY, trace[0].Phase)
	assert.Equal(PHASE_STEP, trace[1].Phase)
	assert.Equal(PHASE_END, trace[2].Phase)
	assert.Equal(99, trace[2].Counter)
	assert.Equal(1, trace[2].Steps)
	assert.Equal(uint64(1), trace[2].Bank.Get("A"))
}

func TestMachineTrace_Once(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(doLoad([]string{"0: faca add A va_para 1"}, t))

	trace := m.Trace()
	assert.Len(slices.Collect(trace), 3)
	assert.Empty(slices.Collect(trace))

	// A new trace is a new run over the current registers.
	assert.Len(slices.Collect(m.Trace()), 3)
	assert.Equal(uint64(2), m.Registers.Get("A"))
}

func TestMachineTrace_Stop(t *testing.T) {
	assert := assert.New(t)

	// Never halts.
	m := NewMachine(doLoad([]string{"0: faca add A va_para 0"}, t))

	count := 0
	for snap := range m.Trace() {
		count++
		if snap.Steps == 100 {
			break
		}
	}
	assert.Equal(102, count)
	assert.Equal(uint64(100), m.Registers.Get("A"))
	assert.False(m.Halted)

	// Stopping leaves the state consistent and resumable.
	m.Tick()
	assert.Equal(uint64(101), m.Registers.Get("A"))
	assert.Equal(0, m.Counter)
}

func TestMachineLimit(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(doLoad([]string{"0: faca add A va_para 0"}, t))

	trace := slices.Collect(Limit(m.Trace(), 5))
	assert.Len(trace, 6)
	assert.Equal(PHASE_ENTRY, trace[0].Phase)
	assert.Equal(4, trace[5].Steps)
	assert.Equal(uint64(5), m.Registers.Get("A"))

	m = NewMachine(doLoad([]string{"0: faca add A va_para 1"}, t))
	assert.Len(slices.Collect(Limit(m.Trace(), 0)), 3)
}

func TestMachineImplicitRegister(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"0: faca add Q va_para 1",
		"1: faca add Q va_para 2",
	}

	var logged bytes.Buffer
	m := NewMachine(doLoad(program, t))
	m.Logger = slog.New(slog.NewTextHandler(&logged, nil))

	trace := slices.Collect(m.Trace())
	assert.Len(trace, 4)
	assert.Equal(uint64(2), trace[3].Bank.Get("Q"))
	assert.Equal(1, strings.Count(logged.String(), "implicit register"))
}

func TestPaced(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(doLoad([]string{"0: faca add A va_para 1"}, t))
	trace := slices.Collect(Paced(context.Background(), m.Trace(), 0))
	assert.Len(trace, 3)

	m = NewMachine(doLoad([]string{"0: faca add A va_para 1"}, t))
	start := time.Now()
	trace = slices.Collect(Paced(context.Background(), m.Trace(), time.Millisecond))
	assert.Len(trace, 3)
	assert.GreaterOrEqual(time.Since(start), 3*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m = NewMachine(doLoad([]string{"0: faca add A va_para 0"}, t))
	count := 0
	for range Paced(ctx, m.Trace(), 0) {
		count++
		if count == 10 {
			cancel()
		}
	}
	assert.Equal(10, count)
}

func TestPhase_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("entry", PHASE_ENTRY.String())
	assert.Equal("step", PHASE_STEP.String())
	assert.Equal("end", PHASE_END.String())
	assert.Equal("Phase(7)", Phase(7).String())
}
