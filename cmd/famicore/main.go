package main

import (
    "fmt"
    "log"
    "os"
    "strconv"

    nes "github.com/famibyte/famicore/lib"

    "github.com/famibyte/famicore/cmd/famicore/debug"
)

type Options struct {
    RomPath string
    MaxSteps uint64
    Trace bool
    TraceJsonPath string
    Breakpoint uint16
    HasBreakpoint bool
    DumpStatePath string
    Verbose bool
    Debug bool
}

func Run(options Options) error {
    cpu := nes.StartupState()

    if options.Verbose {
        cpu.Debug = 1
    }

    if options.Trace {
        cpu.Tracer = &nes.LogTracer{}
    }

    if options.TraceJsonPath != "" {
        file, err := os.Create(options.TraceJsonPath)
        if err != nil {
            return fmt.Errorf("could not create trace file: %v", err)
        }
        defer file.Close()
        cpu.Tracer = nes.NewWriterTracer(file)
    }

    err := cpu.Reset(&nes.FileLoader{Path: options.RomPath})
    if err != nil {
        return err
    }

    log.Printf("Reset complete, PC at 0x%04x\n", cpu.PC)

    if options.Debug {
        debugger := debug.MakeDebugger(&cpu)
        if options.HasBreakpoint {
            debugger.AddBreakpoint(options.Breakpoint)
        }
        return debugger.Run()
    }

    var steps uint64
    for steps = 0; steps < options.MaxSteps; steps++ {
        if cpu.IsHalted() {
            break
        }

        if options.HasBreakpoint && cpu.PC == options.Breakpoint {
            log.Printf("Hit breakpoint at 0x%04x\n", cpu.PC)
            break
        }

        err := cpu.Step()
        if err != nil {
            log.Printf("Execution stopped: %v\n", err)
            break
        }
    }

    log.Printf("Ran %v steps, %v cycles. %v\n", steps, cpu.CycleCount(), cpu.String())

    if cpu.Memory.Faults > 0 {
        log.Printf("Warning: %v invalid memory reads during the run\n", cpu.Memory.Faults)
    }

    if options.DumpStatePath != "" {
        file, err := os.Create(options.DumpStatePath)
        if err != nil {
            return fmt.Errorf("could not create state file: %v", err)
        }
        defer file.Close()

        err = cpu.Serialize(file)
        if err != nil {
            return fmt.Errorf("could not write state file: %v", err)
        }

        log.Printf("Wrote cpu state to %v\n", options.DumpStatePath)
    }

    return nil
}

func showHelp(){
    fmt.Printf("famicore [options] file.nes\n")
    fmt.Printf(" -steps n: run at most n instructions. defaults to 1000\n")
    fmt.Printf(" -trace: log the cpu state after every instruction\n")
    fmt.Printf(" -trace-json file: write the trace as json lines to the given file\n")
    fmt.Printf(" -break addr: stop when the pc reaches the given hex address\n")
    fmt.Printf(" -dump-state file: write the final cpu state as json to the given file\n")
    fmt.Printf(" -verbose: log each instruction as it executes\n")
    fmt.Printf(" -debug: open the interactive debugger\n")
}

func main(){
    log.SetFlags(log.Lshortfile | log.Lmicroseconds)

    options := Options{
        MaxSteps: 1000,
    }

    argIndex := 1
    for argIndex < len(os.Args) {
        arg := os.Args[argIndex]
        switch arg {
            case "-help", "--help", "-h":
                showHelp()
                return
            case "-trace", "--trace":
                options.Trace = true
            case "-verbose", "--verbose":
                options.Verbose = true
            case "-debug", "--debug":
                options.Debug = true
            case "-steps", "--steps":
                var err error
                argIndex += 1
                if argIndex >= len(os.Args) {
                    log.Fatalf("Expected a number of steps\n")
                }
                options.MaxSteps, err = strconv.ParseUint(os.Args[argIndex], 10, 64)
                if err != nil {
                    log.Fatalf("Error parsing steps: %v\n", err)
                }
            case "-break", "--break":
                argIndex += 1
                if argIndex >= len(os.Args) {
                    log.Fatalf("Expected a hex address for -break\n")
                }
                address, err := strconv.ParseUint(os.Args[argIndex], 0, 16)
                if err != nil {
                    log.Fatalf("Error parsing breakpoint address: %v\n", err)
                }
                options.Breakpoint = uint16(address)
                options.HasBreakpoint = true
            case "-trace-json", "--trace-json":
                argIndex += 1
                if argIndex >= len(os.Args) {
                    log.Fatalf("Expected a file path for -trace-json\n")
                }
                options.TraceJsonPath = os.Args[argIndex]
            case "-dump-state", "--dump-state":
                argIndex += 1
                if argIndex >= len(os.Args) {
                    log.Fatalf("Expected a file path for -dump-state\n")
                }
                options.DumpStatePath = os.Args[argIndex]
            default:
                options.RomPath = arg
        }

        argIndex += 1
    }

    if options.RomPath == "" {
        fmt.Printf("Give a .nes argument\n")
        showHelp()
        os.Exit(1)
    }

    err := Run(options)
    if err != nil {
        log.Printf("Error: %v\n", err)
        os.Exit(1)
    }
}
