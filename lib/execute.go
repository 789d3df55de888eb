package lib

import (
    "fmt"
)

/* effective address for ($zp,x): the zero page base plus X, wrapping
 * inside the zero page, dereferenced to a 16-bit pointer.
 */
func (cpu *CPUState) ComputeIndirectX(relative byte) uint16 {
    zero_address := relative + cpu.X
    low := cpu.LoadMemory(uint16(zero_address))
    high := cpu.LoadMemory(uint16(zero_address + 1))
    return (uint16(high) << 8) | uint16(low)
}

/* effective address for ($zp),y: a 16-bit pointer read from the zero
 * page, plus Y. keeping 'relative' a byte makes the zp+1 read wrap.
 */
func (cpu *CPUState) ComputeIndirectY(relative byte) uint16 {
    low := uint16(cpu.LoadMemory(uint16(relative)))
    high := uint16(cpu.LoadMemory(uint16(relative + 1)))
    address := (high << 8) | low
    return address + uint16(cpu.Y)
}

/* dereference a 16-bit pointer for jmp (indirect). the original part
 * never carries into the high byte of the pointer: a pointer ending
 * in 0xff takes its target high byte from the start of the same page.
 */
func (cpu *CPUState) ComputeIndirect(pointer uint16) uint16 {
    low := cpu.LoadMemory(pointer)
    var high byte
    if (pointer & 0x00ff) == 0x00ff {
        high = cpu.LoadMemory(pointer & 0xff00)
    } else {
        high = cpu.LoadMemory(pointer + 1)
    }
    return (uint16(high) << 8) | uint16(low)
}

/* apply one decoded instruction: resolve the operand, run the
 * operation, move the PC past the instruction and account cycles.
 * each supported opcode/addressing-mode pair has its own case.
 */
func (cpu *CPUState) Execute(instruction Instruction) error {
    switch instruction.Kind {
        case Instruction_HLT:
            cpu.PC += instruction.Length()
            cpu.Halted = true
            return nil
        case Instruction_NOP:
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil

        case Instruction_LDA_immediate:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.loadA(value)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_LDA_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.loadA(cpu.LoadMemory(uint16(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_LDA_zero_x:
            zero, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.loadA(cpu.LoadMemory(uint16(zero + cpu.X)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil
        case Instruction_LDA_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.loadA(cpu.LoadMemory(address))
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil
        case Instruction_LDA_absolute_x:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            full := address + uint16(cpu.X)
            page_cross := (full >> 8) != (address >> 8)
            cpu.loadA(cpu.LoadMemory(full))
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            if page_cross {
                cpu.Cycle += 1
            }
            return nil
        case Instruction_LDA_absolute_y:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            full := address + uint16(cpu.Y)
            page_cross := (full >> 8) != (address >> 8)
            cpu.loadA(cpu.LoadMemory(full))
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            if page_cross {
                cpu.Cycle += 1
            }
            return nil
        case Instruction_LDX_immediate:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.loadX(value)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_LDY_immediate:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.loadY(value)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil

        case Instruction_STA_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.StoreMemory(uint16(address), cpu.A)
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_STA_zero_x:
            zero, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.StoreMemory(uint16(zero + cpu.X), cpu.A)
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil
        case Instruction_STA_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.StoreMemory(address, cpu.A)
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil
        case Instruction_STA_indirect_x:
            zero, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.StoreMemory(cpu.ComputeIndirectX(zero), cpu.A)
            cpu.PC += instruction.Length()
            cpu.Cycle += 6
            return nil
        case Instruction_STA_indirect_y:
            zero, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.StoreMemory(cpu.ComputeIndirectY(zero), cpu.A)
            cpu.PC += instruction.Length()
            cpu.Cycle += 6
            return nil
        case Instruction_STX_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.StoreMemory(uint16(address), cpu.X)
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_STX_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.StoreMemory(address, cpu.X)
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil
        case Instruction_STY_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.StoreMemory(uint16(address), cpu.Y)
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_STY_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.StoreMemory(address, cpu.Y)
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil

        /* each branch pays 2 base cycles. the taken cost is kept as
         * the original implemented it per opcode: a flat 3 extra for
         * seven of the branches, but bne pays 1 extra plus 1 more
         * when the branch lands on a different page.
         */
        case Instruction_BPL:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            if !cpu.Negative {
                cpu.PC = uint16(int(cpu.PC) + int(int8(value)))
                cpu.Cycle += 3
            }
            return nil
        case Instruction_BMI:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            if cpu.Negative {
                cpu.PC = uint16(int(cpu.PC) + int(int8(value)))
                cpu.Cycle += 3
            }
            return nil
        case Instruction_BVC:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            if !cpu.Overflow {
                cpu.PC = uint16(int(cpu.PC) + int(int8(value)))
                cpu.Cycle += 3
            }
            return nil
        case Instruction_BVS:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            if cpu.Overflow {
                cpu.PC = uint16(int(cpu.PC) + int(int8(value)))
                cpu.Cycle += 3
            }
            return nil
        case Instruction_BCC:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            if !cpu.Carry {
                cpu.PC = uint16(int(cpu.PC) + int(int8(value)))
                cpu.Cycle += 3
            }
            return nil
        case Instruction_BCS:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            if cpu.Carry {
                cpu.PC = uint16(int(cpu.PC) + int(int8(value)))
                cpu.Cycle += 3
            }
            return nil
        case Instruction_BNE:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            if !cpu.Zero {
                newPC := uint16(int(cpu.PC) + int(int8(value)))
                page_cross := (newPC >> 8) != (cpu.PC >> 8)
                cpu.PC = newPC
                cpu.Cycle += 1
                if page_cross {
                    cpu.Cycle += 1
                }
            }
            return nil
        case Instruction_BEQ:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            if cpu.Zero {
                cpu.PC = uint16(int(cpu.PC) + int(int8(value)))
                cpu.Cycle += 3
            }
            return nil

        case Instruction_PHA:
            cpu.PushStack(cpu.A)
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_PLA:
            cpu.loadA(cpu.PopStack())
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil
        case Instruction_PHP:
            /* php always pushes the b bits as 1 */
            cpu.PushStack(cpu.StatusByte() | (1 << 4) | (1 << 5))
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_PLP:
            cpu.SetStatusByte(cpu.PopStack())
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil

        case Instruction_JSR:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }

            /* the return address is the last byte of the jsr itself,
             * rts adds the 1 back
             */
            next := cpu.PC + 2

            cpu.PushStack(byte(next >> 8))
            cpu.PushStack(byte(next & 0xff))

            cpu.PC = address
            cpu.Cycle += 6
            return nil
        case Instruction_RTS:
            low := cpu.PopStack()
            high := cpu.PopStack()

            cpu.PC = ((uint16(high) << 8) | uint16(low)) + 1
            cpu.Cycle += 6
            return nil
        case Instruction_JMP_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.PC = address
            cpu.Cycle += 3
            return nil
        case Instruction_JMP_indirect:
            pointer, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.PC = cpu.ComputeIndirect(pointer)
            cpu.Cycle += 5
            return nil

        case Instruction_BRK:
            /* the byte after the opcode is a signature byte that the
             * return path skips over
             */
            returnPC := cpu.PC + 2

            cpu.PushStack(byte(returnPC >> 8))
            cpu.PushStack(byte(returnPC & 0xff))
            cpu.PushStack(cpu.StatusByte() | (1 << 4) | (1 << 5))

            cpu.InterruptDisable = true

            low := uint16(cpu.LoadMemory(IRQVector))
            high := uint16(cpu.LoadMemory(IRQVector + 1))
            cpu.PC = (high << 8) | low
            cpu.Cycle += 7
            return nil
        case Instruction_RTI:
            cpu.SetStatusByte(cpu.PopStack())

            low := cpu.PopStack()
            high := cpu.PopStack()

            /* unlike rts there is no +1, brk already pushed the
             * address of the next instruction
             */
            cpu.PC = (uint16(high) << 8) | uint16(low)
            cpu.Cycle += 6
            return nil

        case Instruction_TAX:
            cpu.loadX(cpu.A)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_TXA:
            cpu.loadA(cpu.X)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_TAY:
            cpu.loadY(cpu.A)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_TYA:
            cpu.loadA(cpu.Y)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_TXS:
            /* txs is the one transfer that touches no flags */
            cpu.SP = cpu.X
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_TSX:
            cpu.loadX(cpu.SP)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil

        case Instruction_INX:
            cpu.loadX(cpu.X + 1)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_INY:
            cpu.loadY(cpu.Y + 1)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_DEX:
            cpu.loadX(cpu.X - 1)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_DEY:
            cpu.loadY(cpu.Y - 1)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_INC_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.StoreMemory(uint16(address), cpu.doInc(cpu.LoadMemory(uint16(address))))
            cpu.PC += instruction.Length()
            cpu.Cycle += 5
            return nil
        case Instruction_INC_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.StoreMemory(address, cpu.doInc(cpu.LoadMemory(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 6
            return nil
        case Instruction_DEC_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.StoreMemory(uint16(address), cpu.doDec(cpu.LoadMemory(uint16(address))))
            cpu.PC += instruction.Length()
            cpu.Cycle += 5
            return nil
        case Instruction_DEC_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.StoreMemory(address, cpu.doDec(cpu.LoadMemory(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 6
            return nil

        case Instruction_SEC:
            cpu.Carry = true
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_CLC:
            cpu.Carry = false
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_CLV:
            cpu.Overflow = false
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_SEI:
            cpu.InterruptDisable = true
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_CLI:
            cpu.InterruptDisable = false
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_SED:
            /* the flag is tracked but adc/sbc never consult it */
            cpu.Decimal = true
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_CLD:
            cpu.Decimal = false
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil

        case Instruction_ORA_immediate:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doOrA(value)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_ORA_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doOrA(cpu.LoadMemory(uint16(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_ORA_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.doOrA(cpu.LoadMemory(address))
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil
        case Instruction_AND_immediate:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doAnd(value)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_AND_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doAnd(cpu.LoadMemory(uint16(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_AND_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.doAnd(cpu.LoadMemory(address))
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil
        case Instruction_EOR_immediate:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doEorA(value)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_EOR_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doEorA(cpu.LoadMemory(uint16(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_EOR_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.doEorA(cpu.LoadMemory(address))
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil

        case Instruction_ADC_immediate:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doAdc(value)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_ADC_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doAdc(cpu.LoadMemory(uint16(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_ADC_zero_x:
            zero, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doAdc(cpu.LoadMemory(uint16(zero + cpu.X)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil
        case Instruction_ADC_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.doAdc(cpu.LoadMemory(address))
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil
        case Instruction_SBC_immediate:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doSbc(value)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_SBC_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doSbc(cpu.LoadMemory(uint16(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_SBC_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.doSbc(cpu.LoadMemory(address))
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil

        case Instruction_CMP_immediate:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doCmp(value)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_CMP_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doCmp(cpu.LoadMemory(uint16(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_CMP_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.doCmp(cpu.LoadMemory(address))
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil
        case Instruction_CPX_immediate:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doCpx(value)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_CPX_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doCpx(cpu.LoadMemory(uint16(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_CPX_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.doCpx(cpu.LoadMemory(address))
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil
        case Instruction_CPY_immediate:
            value, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doCpy(value)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_CPY_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doCpy(cpu.LoadMemory(uint16(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_CPY_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.doCpy(cpu.LoadMemory(address))
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil

        case Instruction_BIT_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.doBit(cpu.LoadMemory(uint16(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 3
            return nil
        case Instruction_BIT_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.doBit(cpu.LoadMemory(address))
            cpu.PC += instruction.Length()
            cpu.Cycle += 4
            return nil

        case Instruction_ASL_accumulator:
            cpu.A = cpu.doAsl(cpu.A)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_ASL_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.StoreMemory(uint16(address), cpu.doAsl(cpu.LoadMemory(uint16(address))))
            cpu.PC += instruction.Length()
            cpu.Cycle += 5
            return nil
        case Instruction_ASL_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.StoreMemory(address, cpu.doAsl(cpu.LoadMemory(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 6
            return nil
        case Instruction_LSR_accumulator:
            cpu.A = cpu.doLsr(cpu.A)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_LSR_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.StoreMemory(uint16(address), cpu.doLsr(cpu.LoadMemory(uint16(address))))
            cpu.PC += instruction.Length()
            cpu.Cycle += 5
            return nil
        case Instruction_LSR_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.StoreMemory(address, cpu.doLsr(cpu.LoadMemory(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 6
            return nil
        case Instruction_ROL_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.StoreMemory(uint16(address), cpu.doRol(cpu.LoadMemory(uint16(address))))
            cpu.PC += instruction.Length()
            cpu.Cycle += 5
            return nil
        case Instruction_ROL_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.StoreMemory(address, cpu.doRol(cpu.LoadMemory(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 6
            return nil
        case Instruction_ROR_accumulator:
            cpu.A = cpu.doRor(cpu.A)
            cpu.PC += instruction.Length()
            cpu.Cycle += 2
            return nil
        case Instruction_ROR_zero:
            address, err := instruction.OperandByte()
            if err != nil {
                return err
            }
            cpu.StoreMemory(uint16(address), cpu.doRor(cpu.LoadMemory(uint16(address))))
            cpu.PC += instruction.Length()
            cpu.Cycle += 5
            return nil
        case Instruction_ROR_absolute:
            address, err := instruction.OperandWord()
            if err != nil {
                return err
            }
            cpu.StoreMemory(address, cpu.doRor(cpu.LoadMemory(address)))
            cpu.PC += instruction.Length()
            cpu.Cycle += 6
            return nil
    }

    return fmt.Errorf("unable to execute instruction 0x%x: %v at PC 0x%x", instruction.Kind, instruction.String(), cpu.PC)
}
