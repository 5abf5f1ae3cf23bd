package cpu

// Push decrements SP, then writes value to [SP].
func (cpu *Cpu) Push(value uint16) {
	cpu.Sp--
	cpu.Memory[cpu.Sp] = value
}

// Peek reads [SP].
func (cpu *Cpu) Peek() (value uint16) {
	return cpu.Memory[cpu.Sp]
}

// Depth returns the number of words on the stack, assuming it started
// empty at SP 0.
func (cpu *Cpu) Depth() int {
	return (MEMORY_SIZE - int(cpu.Sp)) % MEMORY_SIZE
}
