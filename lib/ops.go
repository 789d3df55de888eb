package lib

/* the flag-and-value transforms behind the arithmetic, logic and
 * shift instructions. none of these touch memory, the Execute cases
 * write results back when the destination is a memory operand.
 */

func (cpu *CPUState) loadA(value byte) {
    cpu.A = value
    cpu.Negative = int8(value) < 0
    cpu.Zero = cpu.A == 0
}

func (cpu *CPUState) loadX(value byte) {
    cpu.X = value
    cpu.Negative = int8(value) < 0
    cpu.Zero = cpu.X == 0
}

func (cpu *CPUState) loadY(value byte) {
    cpu.Y = value
    cpu.Negative = int8(value) < 0
    cpu.Zero = cpu.Y == 0
}

func (cpu *CPUState) doOrA(value byte) {
    cpu.A = cpu.A | value
    cpu.Negative = int8(cpu.A) < 0
    cpu.Zero = cpu.A == 0
}

func (cpu *CPUState) doAnd(value byte) {
    cpu.A = cpu.A & value
    cpu.Negative = int8(cpu.A) < 0
    cpu.Zero = cpu.A == 0
}

func (cpu *CPUState) doEorA(value byte) {
    cpu.A = cpu.A ^ value
    cpu.Negative = int8(cpu.A) < 0
    cpu.Zero = cpu.A == 0
}

/* 9-bit sum of A, the operand and carry-in. carry-out is bit 8,
 * signed overflow happens exactly when A and the operand share a
 * sign and the sum's sign differs from it.
 *
 * the decimal flag is never consulted, this core does not do BCD
 * arithmetic even when the flag is set.
 */
func (cpu *CPUState) doAdc(value byte) {
    var carryBit uint16
    if cpu.Carry {
        carryBit = 1
    }

    sum := uint16(cpu.A) + uint16(value) + carryBit
    result := byte(sum)

    cpu.Carry = sum > 0xff
    cpu.Overflow = (^(cpu.A ^ value) & (cpu.A ^ result) & 0x80) != 0

    cpu.A = result
    cpu.Negative = int8(cpu.A) < 0
    cpu.Zero = cpu.A == 0
}

/* sbc is adc with the operand complemented: A + ^value + carry.
 * carry-out set means no borrow happened.
 */
func (cpu *CPUState) doSbc(value byte) {
    var carryBit uint16
    if cpu.Carry {
        carryBit = 1
    }

    sum := uint16(cpu.A) + uint16(^value) + carryBit
    result := byte(sum)

    cpu.Carry = (sum & 0x100) != 0
    cpu.Overflow = ((cpu.A ^ result) & (cpu.A ^ value) & 0x80) != 0

    cpu.A = result
    cpu.Negative = int8(cpu.A) < 0
    cpu.Zero = cpu.A == 0
}

func (cpu *CPUState) doCmp(value byte) {
    diff := cpu.A - value
    cpu.Carry = cpu.A >= value
    cpu.Zero = cpu.A == value
    cpu.Negative = int8(diff) < 0
}

func (cpu *CPUState) doCpx(value byte) {
    diff := cpu.X - value
    cpu.Carry = cpu.X >= value
    cpu.Zero = cpu.X == value
    cpu.Negative = int8(diff) < 0
}

func (cpu *CPUState) doCpy(value byte) {
    diff := cpu.Y - value
    cpu.Carry = cpu.Y >= value
    cpu.Zero = cpu.Y == value
    cpu.Negative = int8(diff) < 0
}

/* bit copies bits 7 and 6 of the operand into negative and
 * overflow, A itself is not modified.
 */
func (cpu *CPUState) doBit(value byte) {
    cpu.Zero = (cpu.A & value) == 0
    cpu.Negative = (value & (1 << 7)) != 0
    cpu.Overflow = (value & (1 << 6)) != 0
}

func (cpu *CPUState) doInc(value byte) byte {
    value = value + 1
    cpu.Negative = int8(value) < 0
    cpu.Zero = value == 0
    return value
}

func (cpu *CPUState) doDec(value byte) byte {
    value = value - 1
    cpu.Negative = int8(value) < 0
    cpu.Zero = value == 0
    return value
}

func (cpu *CPUState) doAsl(value byte) byte {
    carry := (value & (1 << 7)) != 0
    out := value << 1
    cpu.Carry = carry
    cpu.Negative = int8(out) < 0
    cpu.Zero = out == 0
    return out
}

/* lsr always clears negative, no sign bit survives a right shift */
func (cpu *CPUState) doLsr(value byte) byte {
    carry := (value & 1) != 0
    out := value >> 1
    cpu.Carry = carry
    cpu.Negative = false
    cpu.Zero = out == 0
    return out
}

func (cpu *CPUState) doRol(value byte) byte {
    var carryBit byte
    if cpu.Carry {
        carryBit = 1
    }

    newCarry := (value & (1 << 7)) != 0
    out := (value << 1) | carryBit

    cpu.Carry = newCarry
    cpu.Negative = int8(out) < 0
    cpu.Zero = out == 0
    return out
}

func (cpu *CPUState) doRor(value byte) byte {
    var carryBit byte
    if cpu.Carry {
        carryBit = 1
    }

    newCarry := (value & 1) != 0
    out := (value >> 1) | (carryBit << 7)

    cpu.Carry = newCarry
    cpu.Negative = int8(out) < 0
    cpu.Zero = out == 0
    return out
}
