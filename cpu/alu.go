package cpu

// doAlu performs the requested operation with a 32-bit intermediate, so
// that carry, borrow and shifted-out bits land in the upper half.
// Conditionals return 1 when the condition holds, else 0.
func doAlu(op CodeOp, a uint32, b uint32) (res uint32) {
	switch op {
	case OP_SET:
		res = b
	case OP_ADD:
		res = a + b
	case OP_SUB:
		res = a - b
	case OP_MUL:
		res = a * b
	case OP_DIV:
		if b != 0 {
			res = a / b
		}
	case OP_MOD:
		if b != 0 {
			res = a % b
		}
	case OP_SHL:
		res = a << b
	case OP_SHR:
		res = a >> b
	case OP_AND:
		res = a & b
	case OP_BOR:
		res = a | b
	case OP_XOR:
		res = a ^ b
	case OP_IFE:
		res = truth(a == b)
	case OP_IFN:
		res = truth(a != b)
	case OP_IFG:
		res = truth(a > b)
	case OP_IFB:
		res = truth((a & b) != 0)
	}

	return
}

func truth(cond bool) uint32 {
	if cond {
		return 1
	}
	return 0
}
