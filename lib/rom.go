package lib

import (
    "bufio"
    "bytes"
    "fmt"
    "io"
    "log"
    "os"
)

/* a raw cartridge image: a 16 byte header followed by 32k of program */
type CartFile struct {
    Header []byte
    ProgramRom []byte
}

func isINesHeader(header []byte) bool {
    return bytes.Equal(header[0:4], []byte{'N', 'E', 'S', 0x1a})
}

func ParseCart(reader io.Reader) (CartFile, error) {
    header := make([]byte, HeaderSize)
    _, err := io.ReadFull(reader, header)
    if err != nil {
        return CartFile{}, fmt.Errorf("could not read the cartridge header: %v", err)
    }

    /* a missing magic is suspicious but not fatal, the header bytes
     * are not interpreted beyond being copied around
     */
    if !isINesHeader(header) {
        log.Printf("warning: cartridge header does not start with the ines magic\n")
    }

    program := make([]byte, RomSize)
    _, err = io.ReadFull(reader, program)
    if err != nil {
        return CartFile{}, fmt.Errorf("could not read %v bytes of program rom: %v", RomSize, err)
    }

    return CartFile{
        Header: header,
        ProgramRom: program,
    }, nil
}

func ParseCartFile(path string) (CartFile, error) {
    file, err := os.Open(path)
    if err != nil {
        return CartFile{}, err
    }
    defer file.Close()

    return ParseCart(bufio.NewReader(file))
}

/* anything that can produce a cartridge image for Reset */
type Loader interface {
    LoadCart() (CartFile, error)
}

type FileLoader struct {
    Path string
}

func (loader *FileLoader) LoadCart() (CartFile, error) {
    return ParseCartFile(loader.Path)
}

/* serves an in-memory image, mostly useful in tests */
type ImageLoader struct {
    Cart CartFile
}

func (loader *ImageLoader) LoadCart() (CartFile, error) {
    return loader.Cart, nil
}
