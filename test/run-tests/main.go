package main

import (
    "log"
    "os"

    "github.com/famibyte/famicore/test/run-tests/scenarios"
    test_utils "github.com/famibyte/famicore/test/run-tests/utils"
)

func main(){
    log.SetFlags(log.Lshortfile | log.Lmicroseconds)

    verbose := false
    for _, arg := range os.Args[1:] {
        if arg == "-verbose" || arg == "--verbose" {
            verbose = true
        }
    }

    tests := []struct {
        Name string
        Run func(bool) (bool, error)
    }{
        {Name: "arithmetic", Run: scenarios.Arithmetic},
        {Name: "branching", Run: scenarios.Branching},
        {Name: "subroutines", Run: scenarios.Subroutines},
        {Name: "interrupts", Run: scenarios.Interrupts},
        {Name: "shifts", Run: scenarios.Shifts},
    }

    failures := 0
    for _, test := range tests {
        ok, err := test.Run(verbose)
        if err != nil {
            log.Printf(test_utils.Error(test.Name, err))
            failures += 1
            continue
        }

        if ok {
            log.Printf(test_utils.Success(test.Name))
        } else {
            log.Printf(test_utils.Failure(test.Name))
            failures += 1
        }
    }

    if failures > 0 {
        log.Printf("%v tests failed", failures)
        os.Exit(1)
    }
}
