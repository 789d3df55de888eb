package lib

import (
    "testing"
)

func TestRamMirror(test *testing.T){
    memory := NewMemoryMap()

    memory.Store(0x0005, 0x42)

    for _, address := range []uint16{0x0005, 0x0805, 0x1005, 0x1805} {
        if memory.Load(address) != 0x42 {
            test.Fatalf("expected mirror address 0x%x to read 0x42 but was 0x%x\n", address, memory.Load(address))
        }
    }

    /* writes through a mirror land in the same cell */
    memory.Store(0x1805, 0x17)
    if memory.Load(0x0005) != 0x17 {
        test.Fatalf("expected mirrored write to land at 0x5 but read 0x%x\n", memory.Load(0x0005))
    }
}

/* every write lands in ram, even ones aimed at the rom range */
func TestStoreAlwaysRam(test *testing.T){
    memory := NewMemoryMap()
    memory.Rom[0x123] = 0x50

    memory.Store(0x8123, 0x99)

    if memory.Rom[0x123] != 0x50 {
        test.Fatalf("rom expected to be untouched by a write but was 0x%x\n", memory.Rom[0x123])
    }

    if memory.Ram[0x123] != 0x99 {
        test.Fatalf("expected the write to land in ram at 0x123 but was 0x%x\n", memory.Ram[0x123])
    }
}

func TestOpenBusRead(test *testing.T){
    memory := NewMemoryMap()

    value := memory.Load(0x4016)
    if value != 0 {
        test.Fatalf("open bus read expected to produce 0 but was 0x%x\n", value)
    }

    if memory.Faults != 1 {
        test.Fatalf("expected 1 recorded fault but was %v\n", memory.Faults)
    }

    memory.Load(0x2000)
    memory.Load(0x7fff)

    if memory.Faults != 3 {
        test.Fatalf("expected 3 recorded faults but was %v\n", memory.Faults)
    }
}

func TestRomRead(test *testing.T){
    memory := NewMemoryMap()
    memory.Rom[0] = 0xa9
    memory.Rom[RomSize - 1] = 0x80

    if memory.Load(0x8000) != 0xa9 {
        test.Fatalf("expected rom read at 0x8000 to be 0xa9 but was 0x%x\n", memory.Load(0x8000))
    }

    if memory.Load(0xffff) != 0x80 {
        test.Fatalf("expected rom read at 0xffff to be 0x80 but was 0x%x\n", memory.Load(0xffff))
    }
}

func TestLoadImageSizes(test *testing.T){
    memory := NewMemoryMap()

    err := memory.LoadImage(make([]byte, 5), make([]byte, RomSize))
    if err == nil {
        test.Fatalf("expected an error for a short header\n")
    }

    err = memory.LoadImage(make([]byte, HeaderSize), make([]byte, 100))
    if err == nil {
        test.Fatalf("expected an error for a short program\n")
    }

    program := make([]byte, RomSize)
    program[0x10] = 0x77

    err = memory.LoadImage(make([]byte, HeaderSize), program)
    if err != nil {
        test.Fatalf("could not load a well formed image: %v", err)
    }

    if memory.Load(0x8010) != 0x77 {
        test.Fatalf("expected the image byte to be visible at 0x8010 but was 0x%x\n", memory.Load(0x8010))
    }
}

func TestClear(test *testing.T){
    memory := NewMemoryMap()
    memory.Store(0x10, 0x42)
    memory.Rom[0x20] = 0x43

    memory.Clear()

    if memory.Load(0x10) != 0 || memory.Rom[0x20] != 0 {
        test.Fatalf("expected clear to zero both ram and rom\n")
    }
}
