package cpu

// LocationKind is the class of a resolved value field.
type LocationKind int

//go:generate go tool stringer -linecomment -type=LocationKind
const (
	LOCATION_REGISTER = LocationKind(0) // register
	LOCATION_MEMORY   = LocationKind(1) // memory
	LOCATION_SP       = LocationKind(2) // sp
	LOCATION_PC       = LocationKind(3) // pc
	LOCATION_O        = LocationKind(4) // o
	LOCATION_LITERAL  = LocationKind(5) // literal
)

// Location is a value field resolved against the CPU state.
// Index is the register index, memory address or literal value.
type Location struct {
	Kind  LocationKind
	Index uint16
}

// NewValue resolves a value field. Extended value fields consume the next
// word at PC and cost one extra cycle. Stack fields adjust SP as a side
// effect and resolve to the memory location of the stack word.
func (cpu *Cpu) NewValue(field CodeValue) (loc Location, err error) {
	if field.Extended() {
		cpu.Cycles++
	}

	switch {
	case field < VALUE_REG_MEM:
		loc = Location{LOCATION_REGISTER, uint16(field - VALUE_REG)}
	case field < VALUE_REG_NEXT:
		loc = Location{LOCATION_MEMORY, cpu.Register[field-VALUE_REG_MEM]}
	case field < VALUE_POP:
		reg := cpu.Register[field-VALUE_REG_NEXT]
		loc = Location{LOCATION_MEMORY, reg + cpu.nextWord()}
	case field == VALUE_POP:
		loc = Location{LOCATION_MEMORY, cpu.Sp}
		cpu.Sp++
	case field == VALUE_PEEK:
		loc = Location{LOCATION_MEMORY, cpu.Sp}
	case field == VALUE_PUSH:
		cpu.Sp--
		loc = Location{LOCATION_MEMORY, cpu.Sp}
	case field == VALUE_SP:
		loc = Location{Kind: LOCATION_SP}
	case field == VALUE_PC:
		loc = Location{Kind: LOCATION_PC}
	case field == VALUE_O:
		loc = Location{Kind: LOCATION_O}
	case field == VALUE_MEM_NEXT:
		loc = Location{LOCATION_MEMORY, cpu.nextWord()}
	case field == VALUE_NEXT:
		loc = Location{LOCATION_LITERAL, cpu.nextWord()}
	case field <= VALUE_MASK:
		loc = Location{LOCATION_LITERAL, uint16(field - VALUE_LITERAL)}
	default:
		loc = Location{LOCATION_LITERAL, 0}
		err = ErrInvalidValueField
	}

	return
}

// Get reads the value at a location.
func (cpu *Cpu) Get(loc Location) (value uint16) {
	switch loc.Kind {
	case LOCATION_REGISTER:
		value = cpu.Register[loc.Index]
	case LOCATION_MEMORY:
		value = cpu.Memory[loc.Index]
	case LOCATION_SP:
		value = cpu.Sp
	case LOCATION_PC:
		value = cpu.Pc
	case LOCATION_O:
		value = cpu.O
	case LOCATION_LITERAL:
		value = loc.Index
	default:
		panic("unknown location")
	}

	return
}

// Set writes the value to a location. Writes to literals are dropped.
func (cpu *Cpu) Set(loc Location, value uint16) (err error) {
	switch loc.Kind {
	case LOCATION_REGISTER:
		cpu.Register[loc.Index] = value
	case LOCATION_MEMORY:
		cpu.Memory[loc.Index] = value
	case LOCATION_SP:
		cpu.Sp = value
	case LOCATION_PC:
		cpu.Pc = value
	case LOCATION_O:
		cpu.O = value
	case LOCATION_LITERAL:
		err = ErrWriteToLiteral
	default:
		panic("unknown location")
	}

	return
}
