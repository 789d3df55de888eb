package lib

import (
    "encoding/json"
    "fmt"
    "io"
    "log"
)

const ResetVector uint16 = 0xfffc
const IRQVector uint16 = 0xfffe

/* the stack lives in page one. the stack pointer is 8 bits and wraps
 * silently, there is no overflow detection on the real part either.
 */
const StackBase uint16 = 0x0100

type CPUState struct {
    A byte `json:"a"`
    X byte `json:"x"`
    Y byte `json:"y"`
    SP byte `json:"sp"`
    PC uint16 `json:"pc"`

    Carry bool `json:"carry"`
    Zero bool `json:"zero"`
    InterruptDisable bool `json:"interrupt-disable"`
    Decimal bool `json:"decimal"`
    Overflow bool `json:"overflow"`
    Negative bool `json:"negative"`

    Halted bool `json:"halted"`
    Cycle uint64 `json:"cycle"`

    Memory *MemoryMap `json:"memory"`

    Tracer Tracer `json:"-"`
    Debug uint `json:"-"`

    table InstructionTable
}

func StartupState() CPUState {
    return CPUState{
        SP: 0xff,
        Memory: NewMemoryMap(),
        table: MakeInstructionTable(),
    }
}

func (cpu *CPUState) String() string {
    return fmt.Sprintf("A:0x%X X:0x%X Y:0x%X SP:0x%X P:0x%X PC:0x%X Cycle:%v", cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.StatusByte(), cpu.PC, cpu.Cycle)
}

func (cpu *CPUState) Serialize(writer io.Writer) error {
    encoder := json.NewEncoder(writer)
    return encoder.Encode(cpu)
}

/* NV-BDIZC packing of the flags. bits 4 and 5 are not backed by
 * storage in the cpu, the push sites force them as needed.
 */
func (cpu *CPUState) StatusByte() byte {
    var status byte
    if cpu.Negative {
        status |= 1 << 7
    }
    if cpu.Overflow {
        status |= 1 << 6
    }
    if cpu.Decimal {
        status |= 1 << 3
    }
    if cpu.InterruptDisable {
        status |= 1 << 2
    }
    if cpu.Zero {
        status |= 1 << 1
    }
    if cpu.Carry {
        status |= 1
    }
    return status
}

/* bits 4 and 5 of the incoming value are ignored, matching plp/rti */
func (cpu *CPUState) SetStatusByte(value byte) {
    cpu.Negative = (value & (1 << 7)) != 0
    cpu.Overflow = (value & (1 << 6)) != 0
    cpu.Decimal = (value & (1 << 3)) != 0
    cpu.InterruptDisable = (value & (1 << 2)) != 0
    cpu.Zero = (value & (1 << 1)) != 0
    cpu.Carry = (value & 1) != 0
}

func (cpu *CPUState) LoadMemory(address uint16) byte {
    return cpu.Memory.Load(address)
}

func (cpu *CPUState) StoreMemory(address uint16, value byte) {
    cpu.Memory.Store(address, value)
}

func (cpu *CPUState) PushStack(value byte) {
    cpu.StoreMemory(StackBase + uint16(cpu.SP), value)
    cpu.SP -= 1
}

func (cpu *CPUState) PopStack() byte {
    cpu.SP += 1
    return cpu.LoadMemory(StackBase + uint16(cpu.SP))
}

/* read the opcode at PC and its operand bytes. the PC is not moved
 * here, Execute advances it by the instruction length.
 */
func (cpu *CPUState) Fetch(table InstructionTable) (Instruction, error) {
    first := cpu.LoadMemory(cpu.PC)
    firstI := InstructionType(first)

    description, ok := table[firstI]
    if !ok {
        return Instruction{}, fmt.Errorf("unknown opcode 0x%02x at PC 0x%04x", first, cpu.PC)
    }

    operands := make([]byte, description.Operands)
    for i := 0; i < int(description.Operands); i++ {
        operands[i] = cpu.LoadMemory(cpu.PC + uint16(i + 1))
    }

    instruction := Instruction{
        Name: description.Name,
        Kind: firstI,
        Operands: operands,
    }

    return instruction, nil
}

/* one full fetch/decode/execute round. a halted cpu does nothing.
 * an unknown opcode halts the cpu and is reported as an error, the
 * registers and memory are left exactly as they were.
 */
func (cpu *CPUState) Step() error {
    if cpu.Halted {
        return nil
    }

    if cpu.table == nil {
        cpu.table = MakeInstructionTable()
    }

    instruction, err := cpu.Fetch(cpu.table)
    if err != nil {
        cpu.Halted = true
        return err
    }

    if cpu.Debug > 0 {
        log.Printf("PC: 0x%x Execute instruction %v A:%X X:%X Y:%X P:%X SP:%X CYC:%v\n", cpu.PC, instruction.String(), cpu.A, cpu.X, cpu.Y, cpu.StatusByte(), cpu.SP, cpu.Cycle)
    }

    err = cpu.Execute(instruction)
    if err != nil {
        cpu.Halted = true
        return err
    }

    if cpu.Tracer != nil {
        cpu.Tracer.Trace(cpu.Snapshot(byte(instruction.Kind)))
    }

    return nil
}

func (cpu *CPUState) IsHalted() bool {
    return cpu.Halted
}

func (cpu *CPUState) CycleCount() uint64 {
    return cpu.Cycle
}

/* power-on/reset contract: registers cleared, interrupts disabled,
 * SP at 0xfd, then the image is copied in and the PC comes from the
 * little endian reset vector. the cycle counter is deliberately not
 * part of the reset contract.
 *
 * if the loader fails the memory stays zeroed and the cpu is left
 * halted so a driver loop cannot run an inconsistent image.
 */
func (cpu *CPUState) Reset(loader Loader) error {
    cpu.PC = 0
    cpu.A = 0
    cpu.X = 0
    cpu.Y = 0
    cpu.Carry = false
    cpu.Zero = false
    cpu.InterruptDisable = true
    cpu.Decimal = false
    cpu.Overflow = false
    cpu.Negative = false
    cpu.SP = 0xfd
    cpu.Halted = false

    cpu.Memory.Clear()

    cart, err := loader.LoadCart()
    if err != nil {
        cpu.Halted = true
        return fmt.Errorf("could not load cartridge: %v", err)
    }

    err = cpu.Memory.LoadImage(cart.Header, cart.ProgramRom)
    if err != nil {
        cpu.Halted = true
        return fmt.Errorf("could not load cartridge: %v", err)
    }

    low := uint16(cpu.LoadMemory(ResetVector))
    high := uint16(cpu.LoadMemory(ResetVector + 1))
    cpu.PC = (high << 8) | low

    return nil
}
