package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"w65816/loader"
	"w65816/machine"
)

func main() {
	var (
		romPath   string
		hexPath   string
		srecPath  string
		atStr     string
		maxSteps  int
		trace     bool
		stopOnStp bool
	)

	rootCmd := &cobra.Command{
		Use:   "w65816run",
		Short: "Run a W65C816S program image against the sample board",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := machine.New(machine.DefaultLayout())

			at, err := parseAddr(atStr)
			if err != nil {
				return fmt.Errorf("--at: %w", err)
			}

			var entry *uint32
			switch {
			case romPath != "":
				data, err := os.ReadFile(romPath)
				if err != nil {
					return err
				}
				report, err := loader.LoadRaw(m, 0, at, data)
				if err != nil {
					return err
				}
				fmt.Printf("loaded %d bytes at %#04x\n", report.BytesLoaded, at)

			case hexPath != "":
				f, err := os.Open(hexPath)
				if err != nil {
					return err
				}
				defer f.Close()
				report, err := loader.LoadIntelHex(m, hexPath, f)
				printReport(hexPath, report, err)
				if err != nil {
					return err
				}
				entry = report.EntryPoint

			case srecPath != "":
				f, err := os.Open(srecPath)
				if err != nil {
					return err
				}
				defer f.Close()
				report, err := loader.LoadSRecord(m, srecPath, f)
				printReport(srecPath, report, err)
				if err != nil {
					return err
				}
				entry = report.EntryPoint

			default:
				return fmt.Errorf("one of --rom, --hex, --srec is required")
			}

			m.Reset()
			if entry != nil {
				m.CPU.PC = uint16(*entry)
			}

			var lastPC uint16
			samePCCount := 0

			for i := 0; i < maxSteps; i++ {
				result := m.Step()
				if trace {
					fmt.Printf("%06x %-4s cycles=%d\n", result.Address, result.Mnemonic, result.Cycles)
				}
				if result.Halted {
					if stopOnStp {
						fmt.Println("halted (STP)")
						break
					}
				}
				if result.Address == uint32(lastPC) {
					samePCCount++
					if samePCCount > 3 {
						fmt.Println("stalled at same PC, stopping")
						break
					}
				} else {
					samePCCount = 0
				}
				lastPC = uint16(result.Address)
			}

			fmt.Println(m.Dump())
			return nil
		},
	}

	rootCmd.Flags().StringVar(&romPath, "rom", "", "Raw binary image to load")
	rootCmd.Flags().StringVar(&hexPath, "hex", "", "Intel HEX image to load")
	rootCmd.Flags().StringVar(&srecPath, "srec", "", "Motorola S-record image to load")
	rootCmd.Flags().StringVar(&atStr, "at", "0x8000", "Load address for --rom (hex, e.g. 0x8000)")
	rootCmd.Flags().IntVar(&maxSteps, "steps", 100_000, "Maximum instructions to execute")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "Print a per-instruction trace")
	rootCmd.Flags().BoolVar(&stopOnStp, "stop-on-stp", true, "Stop the run when the processor executes STP")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseAddr(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func printReport(path string, report *loader.Report, err error) {
	if report == nil {
		return
	}
	fmt.Printf("loaded %d bytes from %s\n", report.BytesLoaded, path)
	for _, w := range report.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}
