package norma

import (
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// RegisterNames is the fixed register bank, in display order.
var RegisterNames = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// DisplayNames is the subset of registers shown in a trace.
var DisplayNames = RegisterNames[:5]

// IsRegister reports if a name is one of the fixed registers.
func IsRegister(name string) bool {
	return slices.Contains(RegisterNames, name)
}

// Registers is a bank of non-negative integer registers.
//
// Every fixed register is always present. Other names are only created
// by a running program referring to them, and start at zero.
// The zero value is an empty bank, usable as is.
type Registers struct {
	value map[string]uint64
}

// bank returns the value map, allocating it on first write.
func (regs *Registers) bank() map[string]uint64 {
	if regs.value == nil {
		regs.value = make(map[string]uint64, len(RegisterNames))
	}
	return regs.value
}

// NewRegisters returns a bank with every fixed register at zero.
func NewRegisters() (regs *Registers) {
	regs = &Registers{
		value: make(map[string]uint64, len(RegisterNames)),
	}
	regs.Reset()
	return
}

// Reset sets every fixed register to zero and drops any other register.
func (regs *Registers) Reset() {
	bank := regs.bank()
	clear(bank)
	for _, name := range RegisterNames {
		bank[name] = 0
	}
}

// Init resets the bank, then applies textual initial values.
//
// Names are case-insensitive. Unknown names are ignored, and values that
// are not non-negative integers are replaced with zero; each such entry
// produces a diagnostic. Diagnostics are ordered by name.
func (regs *Registers) Init(values map[string]string) (diags []error) {
	regs.Reset()

	for _, name := range slices.Sorted(maps.Keys(values)) {
		text := values[name]
		reg := strings.ToUpper(strings.TrimSpace(name))
		if !IsRegister(reg) {
			diags = append(diags, ErrRegisterUnknown(name))
			continue
		}
		value, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
		if err != nil {
			diags = append(diags, ErrRegisterValue{Register: reg, Value: text})
			value = 0
		}
		regs.bank()[reg] = value
	}

	return
}

// Get returns the value of a register. Absent registers read as zero.
func (regs *Registers) Get(name string) uint64 {
	return regs.value[name]
}

// Set sets a register, creating it if needed.
func (regs *Registers) Set(name string, value uint64) {
	regs.bank()[name] = value
}

// Has reports if a register exists in the bank.
func (regs *Registers) Has(name string) bool {
	_, ok := regs.value[name]
	return ok
}

// Increment adds one to a register, saturating at the maximum value.
func (regs *Registers) Increment(name string) {
	value := regs.value[name]
	if value < math.MaxUint64 {
		value++
	}
	regs.bank()[name] = value
}

// Decrement subtracts one from a register, stopping at zero.
func (regs *Registers) Decrement(name string) {
	value := regs.value[name]
	if value > 0 {
		value--
	}
	regs.bank()[name] = value
}

// IsZero reports if a register is zero, creating it if needed.
func (regs *Registers) IsZero(name string) bool {
	value, ok := regs.value[name]
	if !ok {
		regs.bank()[name] = 0
	}
	return value == 0
}

// Names iterates over the register names: fixed registers first,
// then any implicit registers in sorted order.
func (regs *Registers) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range RegisterNames {
			if !yield(name) {
				return
			}
		}
		var extra []string
		for name := range regs.value {
			if !IsRegister(name) {
				extra = append(extra, name)
			}
		}
		slices.Sort(extra)
		for _, name := range extra {
			if !yield(name) {
				return
			}
		}
	}
}

// All iterates over every register and its value.
func (regs *Registers) All() iter.Seq2[string, uint64] {
	return func(yield func(string, uint64) bool) {
		for name := range regs.Names() {
			if !yield(name, regs.value[name]) {
				return
			}
		}
	}
}

// Values returns the values of the named registers.
func (regs *Registers) Values(names ...string) (values []uint64) {
	values = make([]uint64, len(names))
	for n, name := range names {
		values[n] = regs.value[name]
	}
	return
}

// Clone returns an independent copy of the bank.
func (regs *Registers) Clone() *Registers {
	return &Registers{value: maps.Clone(regs.value)}
}

// String returns the bank as 'A=0 B=0 ...'.
func (regs *Registers) String() string {
	var parts []string
	for name, value := range regs.All() {
		parts = append(parts, fmt.Sprintf("%v=%d", name, value))
	}
	return strings.Join(parts, " ")
}
