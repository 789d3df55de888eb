package lib

import (
    "fmt"
    "log"
)

/* http://wiki.nesdev.com/w/index.php/CPU_memory_map
 * The cpu sees 2k of ram mirrored through 0x0000-0x07ff and the 32k
 * program rom at 0x8000-0xffff. Everything in between is open bus
 * for this core: reads there fault and produce 0, and every write
 * lands in ram no matter what address was asked for.
 */

const RamSize = 0x800
const RomSize = 0x8000
const HeaderSize = 0x10

const RomBase uint16 = 0x8000

type MemoryMap struct {
    Ram []byte `json:"ram"`
    Rom []byte `json:"-"`
    Header []byte `json:"-"`

    /* counts open bus reads, for observability only */
    Faults uint64 `json:"-"`
}

func NewMemoryMap() *MemoryMap {
    return &MemoryMap{
        Ram: make([]byte, RamSize),
        Rom: make([]byte, RomSize),
        Header: make([]byte, HeaderSize),
    }
}

func (memory *MemoryMap) Load(address uint16) byte {
    if address < RamSize {
        return memory.Ram[address % RamSize]
    }

    if address >= RomBase {
        return memory.Rom[address - RomBase]
    }

    memory.Faults += 1
    log.Printf("Warning: invalid memory read at address 0x%x\n", address)
    return 0
}

/* all writes go to ram, even ones aimed at the rom or the open bus
 * range. the original hardware this models had no write decoding
 * beyond the ram mirror.
 */
func (memory *MemoryMap) Store(address uint16, value byte) {
    memory.Ram[address % RamSize] = value
}

func (memory *MemoryMap) LoadImage(header []byte, program []byte) error {
    if len(header) != HeaderSize {
        return fmt.Errorf("expected a %v byte header but given %v bytes", HeaderSize, len(header))
    }

    if len(program) != RomSize {
        return fmt.Errorf("expected a %v byte program image but given %v bytes", RomSize, len(program))
    }

    copy(memory.Header, header)
    copy(memory.Rom, program)

    return nil
}

/* forget any previously loaded image and zero the ram */
func (memory *MemoryMap) Clear() {
    for i := range memory.Ram {
        memory.Ram[i] = 0
    }
    for i := range memory.Rom {
        memory.Rom[i] = 0
    }
    for i := range memory.Header {
        memory.Header[i] = 0
    }
}
