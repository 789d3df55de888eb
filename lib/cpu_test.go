package lib

import (
    "bytes"
    "encoding/json"
    "fmt"
    "testing"
)

const testBase uint16 = 0x200

/* copy a program into ram and point the pc at it */
func setupCPU(program []byte) CPUState {
    cpu := StartupState()
    for i, value := range program {
        cpu.StoreMemory(testBase + uint16(i), value)
    }
    cpu.PC = testBase
    return cpu
}

func runCPU(test *testing.T, cpu *CPUState) {
    for i := 0; i < 1000; i++ {
        if cpu.IsHalted() {
            return
        }
        err := cpu.Step()
        if err != nil {
            test.Fatalf("could not step the cpu: %v", err)
        }
    }

    test.Fatalf("program did not halt within 1000 steps")
}

func TestLoadStore(test *testing.T){
    cpu := setupCPU([]byte{
        0xa9, 0x08, // lda #$08
        0x85, 0x10, // sta $10
        0xa2, 0x22, // ldx #$22
        0xa0, 0x33, // ldy #$33
        0x02,       // hlt
    })

    runCPU(test, &cpu)

    if cpu.A != 0x8 {
        test.Fatalf("A register expected to be 0x8 but was 0x%x\n", cpu.A)
    }

    if cpu.X != 0x22 {
        test.Fatalf("X register expected to be 0x22 but was 0x%x\n", cpu.X)
    }

    if cpu.Y != 0x33 {
        test.Fatalf("Y register expected to be 0x33 but was 0x%x\n", cpu.Y)
    }

    if cpu.LoadMemory(0x10) != 0x8 {
        test.Fatalf("expected memory location 0x10 to contain 0x8 but was 0x%x\n", cpu.LoadMemory(0x10))
    }

    /* lda 2, sta 3, ldx 2, ldy 2, hlt 0 */
    if cpu.CycleCount() != 9 {
        test.Fatalf("expected 9 cycles but was %v\n", cpu.CycleCount())
    }
}

func TestTransfers(test *testing.T){
    cpu := setupCPU([]byte{
        0xa9, 0x41, // lda #$41
        0xaa,       // tax
        0xa8,       // tay
        0x9a,       // txs
        0x02,       // hlt
    })

    runCPU(test, &cpu)

    if cpu.X != 0x41 {
        test.Fatalf("X register expected to be 0x41 but was 0x%x\n", cpu.X)
    }

    if cpu.Y != 0x41 {
        test.Fatalf("Y register expected to be 0x41 but was 0x%x\n", cpu.Y)
    }

    if cpu.SP != 0x41 {
        test.Fatalf("SP expected to be 0x41 but was 0x%x\n", cpu.SP)
    }
}

func TestZeroAndNegativeFlags(test *testing.T){
    cpu := setupCPU([]byte{
        0xa9, 0x00, // lda #$00
        0x02,       // hlt
    })

    runCPU(test, &cpu)

    if !cpu.Zero {
        test.Fatalf("zero flag expected to be set\n")
    }

    if cpu.Negative {
        test.Fatalf("negative flag expected to be clear\n")
    }

    cpu = setupCPU([]byte{
        0xa9, 0x80, // lda #$80
        0x02,       // hlt
    })

    runCPU(test, &cpu)

    if cpu.Zero {
        test.Fatalf("zero flag expected to be clear\n")
    }

    if !cpu.Negative {
        test.Fatalf("negative flag expected to be set\n")
    }
}

func TestStackPushPop(test *testing.T){
    cpu := setupCPU([]byte{
        0xa9, 0x37, // lda #$37
        0x48,       // pha
        0xa9, 0x00, // lda #$00
        0x68,       // pla
        0x02,       // hlt
    })

    runCPU(test, &cpu)

    if cpu.A != 0x37 {
        test.Fatalf("A register expected to be 0x37 but was 0x%x\n", cpu.A)
    }

    if cpu.SP != 0xff {
        test.Fatalf("SP expected to be back at 0xff but was 0x%x\n", cpu.SP)
    }

    /* lda 2, pha 3, lda 2, pla 4 */
    if cpu.CycleCount() != 11 {
        test.Fatalf("expected 11 cycles but was %v\n", cpu.CycleCount())
    }
}

/* the stack pointer is 8 bits, pushing past the bottom of the page
 * silently wraps back to the top
 */
func TestStackWrap(test *testing.T){
    cpu := StartupState()

    start := cpu.SP
    for i := 0; i < 256; i++ {
        cpu.PushStack(byte(i))
    }

    if cpu.SP != start {
        test.Fatalf("SP expected to wrap back to 0x%x but was 0x%x\n", start, cpu.SP)
    }

    for i := 255; i >= 0; i-- {
        value := cpu.PopStack()
        if value != byte(i) {
            test.Fatalf("expected to pop 0x%x but was 0x%x\n", byte(i), value)
        }
    }
}

func TestPhpPlp(test *testing.T){
    cpu := setupCPU([]byte{
        0x38, // sec
        0x08, // php
        0x18, // clc
        0x28, // plp
        0x02, // hlt
    })

    runCPU(test, &cpu)

    if !cpu.Carry {
        test.Fatalf("carry flag expected to be restored by plp\n")
    }

    /* php forces bits 4 and 5 on in the pushed copy */
    pushed := cpu.LoadMemory(StackBase + 0xff)
    if pushed != 0x31 {
        test.Fatalf("expected pushed status 0x31 but was 0x%x\n", pushed)
    }
}

func TestJsrRts(test *testing.T){
    program := make([]byte, 0x20)
    copy(program[0x00:], []byte{
        0x20, 0x10, 0x02, // jsr $0210
        0xa2, 0x05,       // ldx #$05
        0x02,             // hlt
    })
    copy(program[0x10:], []byte{
        0xa9, 0x07, // lda #$07
        0x60,       // rts
    })

    cpu := setupCPU(program)
    runCPU(test, &cpu)

    if cpu.A != 0x7 {
        test.Fatalf("A register expected to be 0x7 but was 0x%x\n", cpu.A)
    }

    if cpu.X != 0x5 {
        test.Fatalf("X register expected to be 0x5 but was 0x%x\n", cpu.X)
    }

    if cpu.SP != 0xff {
        test.Fatalf("SP expected to be back at 0xff but was 0x%x\n", cpu.SP)
    }

    /* jsr 6, lda 2, rts 6, ldx 2 */
    if cpu.CycleCount() != 16 {
        test.Fatalf("expected 16 cycles but was %v\n", cpu.CycleCount())
    }
}

func TestBrkRti(test *testing.T){
    cpu := setupCPU([]byte{
        0xa9, 0x01, // lda #$01
        0x00,       // brk
        0xff,       // signature byte, skipped by rti
        0xa2, 0x02, // ldx #$02
        0x02,       // hlt
    })

    /* handler at 0x300 */
    cpu.StoreMemory(0x300, 0xa0) // ldy #$09
    cpu.StoreMemory(0x301, 0x09)
    cpu.StoreMemory(0x302, 0x40) // rti

    /* irq vector lives in rom */
    cpu.Memory.Rom[IRQVector - RomBase] = 0x00
    cpu.Memory.Rom[IRQVector - RomBase + 1] = 0x03

    runCPU(test, &cpu)

    if cpu.A != 0x1 {
        test.Fatalf("A register expected to be 0x1 but was 0x%x\n", cpu.A)
    }

    if cpu.Y != 0x9 {
        test.Fatalf("Y register expected to be 0x9 but was 0x%x\n", cpu.Y)
    }

    if cpu.X != 0x2 {
        test.Fatalf("X register expected to be 0x2 but was 0x%x\n", cpu.X)
    }

    /* rti restores the pre-brk status, which had interrupts enabled */
    if cpu.InterruptDisable {
        test.Fatalf("interrupt disable expected to be restored to clear\n")
    }

    if cpu.SP != 0xff {
        test.Fatalf("SP expected to be back at 0xff but was 0x%x\n", cpu.SP)
    }

    /* lda 2, brk 7, ldy 2, rti 6, ldx 2 */
    if cpu.CycleCount() != 19 {
        test.Fatalf("expected 19 cycles but was %v\n", cpu.CycleCount())
    }
}

func TestUnknownOpcodeHalts(test *testing.T){
    cpu := setupCPU([]byte{0x03})

    before := cpu.PC

    err := cpu.Step()
    if err == nil {
        test.Fatalf("expected an error for an unknown opcode\n")
    }

    if !cpu.IsHalted() {
        test.Fatalf("cpu expected to be halted after an unknown opcode\n")
    }

    if cpu.PC != before {
        test.Fatalf("PC expected to be unchanged at 0x%x but was 0x%x\n", before, cpu.PC)
    }

    if cpu.CycleCount() != 0 {
        test.Fatalf("expected no cycles to be charged but was %v\n", cpu.CycleCount())
    }

    /* further steps on a halted cpu do nothing */
    err = cpu.Step()
    if err != nil {
        test.Fatalf("stepping a halted cpu should not error: %v", err)
    }

    if cpu.PC != before {
        test.Fatalf("PC expected to stay at 0x%x but was 0x%x\n", before, cpu.PC)
    }
}

func TestHlt(test *testing.T){
    cpu := setupCPU([]byte{0x02})

    err := cpu.Step()
    if err != nil {
        test.Fatalf("could not step the cpu: %v", err)
    }

    if !cpu.IsHalted() {
        test.Fatalf("cpu expected to be halted\n")
    }

    if cpu.CycleCount() != 0 {
        test.Fatalf("hlt should charge no cycles but was %v\n", cpu.CycleCount())
    }
}

/* build a cartridge image whose reset vector points at the start of
 * rom, with the given code at that spot
 */
func makeTestCart(code []byte) CartFile {
    header := make([]byte, HeaderSize)
    copy(header, []byte{'N', 'E', 'S', 0x1a})

    program := make([]byte, RomSize)
    copy(program, code)
    program[ResetVector - RomBase] = 0x00
    program[ResetVector - RomBase + 1] = 0x80

    return CartFile{
        Header: header,
        ProgramRom: program,
    }
}

func TestReset(test *testing.T){
    cpu := StartupState()

    /* dirty the state so the reset contract is visible */
    cpu.A = 0xff
    cpu.X = 0xff
    cpu.Carry = true
    cpu.Halted = true
    cpu.Cycle = 5

    cart := makeTestCart([]byte{
        0xa9, 0x2a, // lda #$2a
        0x02,       // hlt
    })

    err := cpu.Reset(&ImageLoader{Cart: cart})
    if err != nil {
        test.Fatalf("could not reset the cpu: %v", err)
    }

    if cpu.PC != 0x8000 {
        test.Fatalf("PC expected to come from the reset vector as 0x8000 but was 0x%x\n", cpu.PC)
    }

    if cpu.SP != 0xfd {
        test.Fatalf("SP expected to be 0xfd but was 0x%x\n", cpu.SP)
    }

    if !cpu.InterruptDisable {
        test.Fatalf("interrupt disable expected to be set after reset\n")
    }

    if cpu.A != 0 || cpu.X != 0 || cpu.Carry {
        test.Fatalf("registers and flags expected to be cleared after reset\n")
    }

    if cpu.IsHalted() {
        test.Fatalf("cpu should not be halted after a successful reset\n")
    }

    /* the cycle counter survives a reset */
    if cpu.CycleCount() != 5 {
        test.Fatalf("cycle counter expected to survive reset as 5 but was %v\n", cpu.CycleCount())
    }

    runCPU(test, &cpu)

    if cpu.A != 0x2a {
        test.Fatalf("A register expected to be 0x2a but was 0x%x\n", cpu.A)
    }
}

type failLoader struct {
}

func (loader *failLoader) LoadCart() (CartFile, error) {
    return CartFile{}, fmt.Errorf("no cartridge")
}

func TestResetLoadFailure(test *testing.T){
    cpu := StartupState()
    cpu.StoreMemory(0x10, 0x99)

    err := cpu.Reset(&failLoader{})
    if err == nil {
        test.Fatalf("expected an error from a failing loader\n")
    }

    if !cpu.IsHalted() {
        test.Fatalf("cpu expected to be halted after a failed reset\n")
    }

    if cpu.LoadMemory(0x10) != 0 {
        test.Fatalf("memory expected to be zeroed after a failed reset\n")
    }
}

func TestStatusByte(test *testing.T){
    cpu := StartupState()
    cpu.Negative = true
    cpu.Carry = true
    cpu.Zero = true

    status := cpu.StatusByte()
    if status != 0x83 {
        test.Fatalf("expected status byte 0x83 but was 0x%x\n", status)
    }

    other := StartupState()
    other.SetStatusByte(status)
    if !other.Negative || !other.Carry || !other.Zero || other.Overflow {
        test.Fatalf("status byte round trip lost flags\n")
    }

    /* bits 4 and 5 are ignored on the way in */
    other.SetStatusByte(0x30)
    if other.StatusByte() != 0 {
        test.Fatalf("bits 4 and 5 should be ignored but status was 0x%x\n", other.StatusByte())
    }
}

type recordTracer struct {
    entries []TraceEntry
}

func (tracer *recordTracer) Trace(entry TraceEntry) {
    tracer.entries = append(tracer.entries, entry)
}

func TestTracer(test *testing.T){
    cpu := setupCPU([]byte{
        0xa9, 0x80, // lda #$80
        0x02,       // hlt
    })

    tracer := recordTracer{}
    cpu.Tracer = &tracer

    runCPU(test, &cpu)

    if len(tracer.entries) != 2 {
        test.Fatalf("expected 2 trace entries but got %v\n", len(tracer.entries))
    }

    first := tracer.entries[0]
    if first.Opcode != 0xa9 {
        test.Fatalf("expected first traced opcode 0xa9 but was 0x%x\n", first.Opcode)
    }

    if first.A != 0x80 {
        test.Fatalf("trace should capture the state after the instruction, A was 0x%x\n", first.A)
    }

    if first.Flags != "Nvdizc" {
        test.Fatalf("expected flags Nvdizc but was %v\n", first.Flags)
    }

    if first.Cycle != 2 {
        test.Fatalf("expected cycle 2 in the first entry but was %v\n", first.Cycle)
    }

    if tracer.entries[1].Opcode != 0x02 {
        test.Fatalf("expected the hlt to be traced but opcode was 0x%x\n", tracer.entries[1].Opcode)
    }
}

func TestSerialize(test *testing.T){
    cpu := setupCPU([]byte{0xa9, 0x42, 0x02})
    runCPU(test, &cpu)

    var buffer bytes.Buffer
    err := cpu.Serialize(&buffer)
    if err != nil {
        test.Fatalf("could not serialize the cpu: %v", err)
    }

    var decoded map[string]interface{}
    err = json.Unmarshal(buffer.Bytes(), &decoded)
    if err != nil {
        test.Fatalf("could not decode the serialized cpu: %v", err)
    }

    if decoded["a"].(float64) != 0x42 {
        test.Fatalf("expected serialized A to be 0x42 but was %v\n", decoded["a"])
    }

    if decoded["halted"].(bool) != true {
        test.Fatalf("expected serialized halted to be true\n")
    }
}

func BenchmarkStep(benchmark *testing.B){
    cpu := setupCPU([]byte{
        0x18,             // clc
        0xa9, 0x01,       // lda #$01
        0x69, 0x01,       // adc #$01
        0x4c, 0x00, 0x02, // jmp $0200
    })

    benchmark.ResetTimer()
    for i := 0; i < benchmark.N; i++ {
        err := cpu.Step()
        if err != nil {
            benchmark.Fatalf("could not step the cpu: %v", err)
        }
    }
}
