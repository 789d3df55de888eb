package lib

import (
    "encoding/json"
    "io"
    "log"
)

/* a point-in-time view of the cpu taken after an instruction has
 * finished, with the opcode that just ran.
 */
type TraceEntry struct {
    PC uint16 `json:"pc"`
    Opcode byte `json:"opcode"`
    A byte `json:"a"`
    X byte `json:"x"`
    Y byte `json:"y"`
    SP byte `json:"sp"`
    Flags string `json:"flags"`
    Cycle uint64 `json:"cycle"`
}

/* upper case letter for a set flag, lower case for a clear one */
func (cpu *CPUState) FlagString() string {
    flags := []byte("nvdizc")
    if cpu.Negative {
        flags[0] = 'N'
    }
    if cpu.Overflow {
        flags[1] = 'V'
    }
    if cpu.Decimal {
        flags[2] = 'D'
    }
    if cpu.InterruptDisable {
        flags[3] = 'I'
    }
    if cpu.Zero {
        flags[4] = 'Z'
    }
    if cpu.Carry {
        flags[5] = 'C'
    }
    return string(flags)
}

func (cpu *CPUState) Snapshot(opcode byte) TraceEntry {
    return TraceEntry{
        PC: cpu.PC,
        Opcode: opcode,
        A: cpu.A,
        X: cpu.X,
        Y: cpu.Y,
        SP: cpu.SP,
        Flags: cpu.FlagString(),
        Cycle: cpu.Cycle,
    }
}

type Tracer interface {
    Trace(entry TraceEntry)
}

/* writes each entry through the standard logger */
type LogTracer struct {
}

func (tracer *LogTracer) Trace(entry TraceEntry) {
    log.Printf("PC: 0x%04x Opcode: 0x%02x A: 0x%02x X: 0x%02x Y: 0x%02x SP: 0x%02x Flags: %v Cycle: %v\n", entry.PC, entry.Opcode, entry.A, entry.X, entry.Y, entry.SP, entry.Flags, entry.Cycle)
}

/* writes each entry as a json line, for tooling that wants to chew
 * on a run afterwards
 */
type WriterTracer struct {
    encoder *json.Encoder
}

func NewWriterTracer(writer io.Writer) *WriterTracer {
    return &WriterTracer{
        encoder: json.NewEncoder(writer),
    }
}

func (tracer *WriterTracer) Trace(entry TraceEntry) {
    err := tracer.encoder.Encode(entry)
    if err != nil {
        log.Printf("warning: could not write trace entry: %v", err)
    }
}
