package debug

import (
    "fmt"

    "github.com/jroimartin/gocui"
)

func (debugger *Debugger) layout(gui *gocui.Gui) error {
    maxX, maxY := gui.Size()

    registers, err := gui.SetView("registers", 0, 0, maxX - 1, 4)
    if err != nil && err != gocui.ErrUnknownView {
        return err
    }
    registers.Title = "cpu"
    registers.Clear()
    fmt.Fprintf(registers, "%v", debugger.Registers())

    code, err := gui.SetView("code", 0, 5, maxX / 2 - 1, maxY - 3)
    if err != nil && err != gocui.ErrUnknownView {
        return err
    }
    code.Title = "code"
    code.Clear()
    fmt.Fprintf(code, "%v", debugger.Disassembly(12))

    memory, err := gui.SetView("memory", maxX / 2, 5, maxX - 1, maxY - 3)
    if err != nil && err != gocui.ErrUnknownView {
        return err
    }
    memory.Title = "stack"
    memory.Clear()
    fmt.Fprintf(memory, "%v", debugger.MemoryDump(0x100 + uint16(debugger.Cpu.SP & 0xc0), 12))

    help, err := gui.SetView("help", 0, maxY - 3, maxX - 1, maxY - 1)
    if err != nil && err != gocui.ErrUnknownView {
        return err
    }
    help.Clear()
    fmt.Fprintf(help, "s: step  c: continue  q: quit")

    return nil
}

func (debugger *Debugger) doStep(gui *gocui.Gui, view *gocui.View) error {
    debugger.Step()
    return nil
}

func (debugger *Debugger) doContinue(gui *gocui.Gui, view *gocui.View) error {
    debugger.Continue()
    return nil
}

func doQuit(gui *gocui.Gui, view *gocui.View) error {
    return gocui.ErrQuit
}

func (debugger *Debugger) Run() error {
    gui, err := gocui.NewGui(gocui.OutputNormal)
    if err != nil {
        return err
    }
    defer gui.Close()

    gui.SetManagerFunc(debugger.layout)

    err = gui.SetKeybinding("", 's', gocui.ModNone, debugger.doStep)
    if err != nil {
        return err
    }

    err = gui.SetKeybinding("", 'c', gocui.ModNone, debugger.doContinue)
    if err != nil {
        return err
    }

    err = gui.SetKeybinding("", 'q', gocui.ModNone, doQuit)
    if err != nil {
        return err
    }

    err = gui.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, doQuit)
    if err != nil {
        return err
    }

    err = gui.MainLoop()
    if err != nil && err != gocui.ErrQuit {
        return err
    }

    return nil
}
