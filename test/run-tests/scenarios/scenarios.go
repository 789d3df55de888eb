package scenarios

/* each scenario builds an in-memory cartridge whose program writes
 * its result into the zero page, runs it and checks what it left
 * behind.
 */

import (
    "fmt"
    "log"

    nes "github.com/famibyte/famicore/lib"
)

func makeCart(program []byte) nes.CartFile {
    header := make([]byte, nes.HeaderSize)
    copy(header, []byte{'N', 'E', 'S', 0x1a})

    rom := make([]byte, nes.RomSize)
    copy(rom, program)

    /* reset vector points at the start of rom */
    rom[nes.ResetVector - nes.RomBase] = 0x00
    rom[nes.ResetVector - nes.RomBase + 1] = 0x80

    return nes.CartFile{
        Header: header,
        ProgramRom: rom,
    }
}

func runProgram(cart nes.CartFile, verbose bool) (nes.CPUState, error) {
    cpu := nes.StartupState()

    if verbose {
        cpu.Debug = 1
    }

    err := cpu.Reset(&nes.ImageLoader{Cart: cart})
    if err != nil {
        return cpu, err
    }

    for i := 0; i < 1000; i++ {
        if cpu.IsHalted() {
            return cpu, nil
        }

        err := cpu.Step()
        if err != nil {
            return cpu, err
        }
    }

    return cpu, fmt.Errorf("program did not halt within 1000 steps")
}

func checkMemory(cpu *nes.CPUState, address uint16, expected byte) bool {
    actual := cpu.LoadMemory(address)
    if actual != expected {
        log.Printf("memory location 0x%x expected to contain 0x%x but was 0x%x", address, expected, actual)
        return false
    }

    return true
}

/* sum the numbers 1 to 10 with an adc loop, expecting 55 */
func Arithmetic(verbose bool) (bool, error) {
    cart := makeCart([]byte{
        0xa9, 0x00, // lda #$00
        0x85, 0x10, // sta $10
        0xa2, 0x0a, // ldx #$0a
        0x18,       // clc       (loop)
        0x86, 0x20, // stx $20
        0x65, 0x20, // adc $20
        0xca,       // dex
        0xd0, 0xf8, // bne loop
        0x85, 0x10, // sta $10
        0x02,       // hlt
    })

    cpu, err := runProgram(cart, verbose)
    if err != nil {
        return false, err
    }

    return checkMemory(&cpu, 0x10, 55), nil
}

/* multiply 6 by 7 with repeated addition */
func Branching(verbose bool) (bool, error) {
    cart := makeCart([]byte{
        0x18,       // clc
        0xa9, 0x00, // lda #$00
        0xa2, 0x06, // ldx #$06
        0x69, 0x07, // adc #$07  (loop)
        0xca,       // dex
        0xd0, 0xfb, // bne loop
        0x85, 0x11, // sta $11
        0x02,       // hlt
    })

    cpu, err := runProgram(cart, verbose)
    if err != nil {
        return false, err
    }

    return checkMemory(&cpu, 0x11, 42), nil
}

/* call a doubling subroutine twice through jsr/rts */
func Subroutines(verbose bool) (bool, error) {
    program := make([]byte, 0x20)
    copy(program[0x00:], []byte{
        0xa9, 0x05,       // lda #$05
        0x20, 0x10, 0x80, // jsr $8010
        0x20, 0x10, 0x80, // jsr $8010
        0x85, 0x12,       // sta $12
        0x02,             // hlt
    })
    copy(program[0x10:], []byte{
        0x0a, // asl a
        0x60, // rts
    })

    cpu, err := runProgram(makeCart(program), verbose)
    if err != nil {
        return false, err
    }

    if !checkMemory(&cpu, 0x12, 20) {
        return false, nil
    }

    if cpu.SP != 0xfd {
        log.Printf("SP expected to be back at 0xfd but was 0x%x", cpu.SP)
        return false, nil
    }

    return true, nil
}

/* a brk handler that counts how many times it ran */
func Interrupts(verbose bool) (bool, error) {
    program := make([]byte, 0x30)
    copy(program[0x00:], []byte{
        0xa9, 0x00, // lda #$00
        0x85, 0x13, // sta $13
        0x00, 0xff, // brk
        0x00, 0xff, // brk
        0x02,       // hlt
    })
    copy(program[0x20:], []byte{
        0xe6, 0x13, // inc $13
        0x40,       // rti
    })

    cart := makeCart(program)
    cart.ProgramRom[nes.IRQVector - nes.RomBase] = 0x20
    cart.ProgramRom[nes.IRQVector - nes.RomBase + 1] = 0x80

    cpu, err := runProgram(cart, verbose)
    if err != nil {
        return false, err
    }

    return checkMemory(&cpu, 0x13, 2), nil
}

/* shift and rotate a value through memory */
func Shifts(verbose bool) (bool, error) {
    cart := makeCart([]byte{
        0xa9, 0x81, // lda #$81
        0x85, 0x14, // sta $14
        0x18,       // clc
        0x06, 0x14, // asl $14, carry catches bit 7
        0x26, 0x14, // rol $14, carry rotates back in
        0x02,       // hlt
    })

    cpu, err := runProgram(cart, verbose)
    if err != nil {
        return false, err
    }

    /* 0x81 shifts to 0x02 with carry, then rotates to 0x05 */
    return checkMemory(&cpu, 0x14, 0x05), nil
}
