package debug

import (
    "bytes"
    "fmt"
    "log"

    nes "github.com/famibyte/famicore/lib"
)

// break when the cpu's PC is at a specific value
// TODO: add break upon reading/writing specific memory addresses
type Breakpoint struct {
    PC uint16
    Id uint64
}

func (breakpoint *Breakpoint) Hit(cpu *nes.CPUState) bool {
    return breakpoint.PC == cpu.PC
}

type Debugger struct {
    Cpu *nes.CPUState
    Breakpoints []Breakpoint
    BreakpointId uint64

    /* last error produced by a step, shown in the status line */
    LastError error
}

func MakeDebugger(cpu *nes.CPUState) *Debugger {
    return &Debugger{
        Cpu: cpu,
        BreakpointId: 1,
    }
}

func (debugger *Debugger) AddBreakpoint(pc uint16){
    debugger.Breakpoints = append(debugger.Breakpoints, Breakpoint{
        PC: pc,
        Id: debugger.BreakpointId,
    })
    debugger.BreakpointId += 1
}

func (debugger *Debugger) RemoveBreakpoint(id uint64){
    var out []Breakpoint
    for _, breakpoint := range debugger.Breakpoints {
        if breakpoint.Id != id {
            out = append(out, breakpoint)
        }
    }
    debugger.Breakpoints = out
}

func (debugger *Debugger) AtBreakpoint() bool {
    for _, breakpoint := range debugger.Breakpoints {
        if breakpoint.Hit(debugger.Cpu) {
            return true
        }
    }

    return false
}

func (debugger *Debugger) Step(){
    err := debugger.Cpu.Step()
    if err != nil {
        log.Printf("[debug] step: %v", err)
    }
    debugger.LastError = err
}

/* run until a breakpoint, a halt or an error */
func (debugger *Debugger) Continue(){
    for i := 0; i < 100000; i++ {
        if debugger.Cpu.IsHalted() {
            return
        }

        err := debugger.Cpu.Step()
        if err != nil {
            debugger.LastError = err
            return
        }

        if debugger.AtBreakpoint() {
            return
        }
    }
}

/* read memory without disturbing the fault counter, the debugger
 * views should not look like program behavior
 */
func (debugger *Debugger) peek(address uint16) byte {
    if address < nes.RamSize {
        return debugger.Cpu.Memory.Ram[address]
    }

    if address >= nes.RomBase {
        return debugger.Cpu.Memory.Rom[address - nes.RomBase]
    }

    return 0
}

func (debugger *Debugger) Registers() string {
    cpu := debugger.Cpu
    var out bytes.Buffer

    out.WriteString(fmt.Sprintf("PC: 0x%04x  A: 0x%02x  X: 0x%02x  Y: 0x%02x  SP: 0x%02x\n", cpu.PC, cpu.A, cpu.X, cpu.Y, cpu.SP))
    out.WriteString(fmt.Sprintf("Flags: %v  Cycle: %v", cpu.FlagString(), cpu.CycleCount()))
    if cpu.IsHalted() {
        out.WriteString("  [halted]")
    }
    if debugger.LastError != nil {
        out.WriteString(fmt.Sprintf("\nError: %v", debugger.LastError))
    }

    return out.String()
}

/* decode the next few instructions starting at the pc */
func (debugger *Debugger) Disassembly(count int) string {
    raw := make([]byte, count * 3)
    for i := range raw {
        raw[i] = debugger.peek(debugger.Cpu.PC + uint16(i))
    }

    var out bytes.Buffer

    reader := nes.NewInstructionReader(raw)
    address := debugger.Cpu.PC
    for i := 0; i < count; i++ {
        instruction, err := reader.ReadInstruction()
        if err != nil {
            out.WriteString(fmt.Sprintf("0x%04x: ??\n", address))
            break
        }

        marker := "  "
        if address == debugger.Cpu.PC {
            marker = "> "
        }

        out.WriteString(fmt.Sprintf("%v0x%04x: %v\n", marker, address, instruction.String()))
        address += instruction.Length()
    }

    return out.String()
}

/* a hex dump around the stack and the zero page */
func (debugger *Debugger) MemoryDump(base uint16, rows int) string {
    var out bytes.Buffer

    for row := 0; row < rows; row++ {
        address := base + uint16(row * 8)
        out.WriteString(fmt.Sprintf("0x%04x:", address))
        for i := 0; i < 8; i++ {
            out.WriteString(fmt.Sprintf(" %02x", debugger.peek(address + uint16(i))))
        }
        out.WriteRune('\n')
    }

    return out.String()
}
