package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/spf13/cobra"

	"github.com/yourorg/snarkexec/pkg/fields"
	"github.com/yourorg/snarkexec/pkg/program"
	"github.com/yourorg/snarkexec/pkg/vm"
)

func parseList(csv string) ([]fr.Element, error) {
	if csv == "" {
		return nil, nil
	}
	var out []fr.Element
	for _, s := range strings.Split(csv, ",") {
		e, err := fields.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func main() {
	var (
		programPath string
		functionID  string
		rootS       string
		inputsCSV   string
		outputsCSV  string
		outDir      string
	)

	rootCmd := &cobra.Command{
		Use:   "prover",
		Short: "Produce a sample execution and verifying key for a program function",
		RunE: func(cmd *cobra.Command, _ []string) error {
			prog := program.Credits()
			if programPath != "" {
				src, err := os.ReadFile(programPath)
				if err != nil {
					return err
				}
				if prog, err = program.Parse(string(src)); err != nil {
					return err
				}
			}

			var root fr.Element
			if rootS != "" {
				var err error
				if root, err = fields.ParseRoot(rootS); err != nil {
					return err
				}
			} else if _, err := root.SetRandom(); err != nil {
				return err
			}

			inputIDs, err := parseList(inputsCSV)
			if err != nil {
				return err
			}
			outputIDs, err := parseList(outputsCSV)
			if err != nil {
				return err
			}

			start := time.Now()
			exec, vk, err := vm.Prove(prog, functionID, root, inputIDs, outputIDs)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			execPath := filepath.Join(outDir, functionID+"_execution.json")
			vkPath := filepath.Join(outDir, functionID+"_verifier.txt")
			if err := os.WriteFile(execPath, []byte(exec.String()), 0o644); err != nil {
				return err
			}
			if err := os.WriteFile(vkPath, []byte(vk.String()), 0o644); err != nil {
				return err
			}

			fmt.Printf("execution: %s\n", execPath)
			fmt.Printf("verifier key: %s\n", vkPath)
			fmt.Printf("proof done in %s\n", time.Since(start))
			return nil
		},
	}

	rootCmd.Flags().StringVar(&programPath, "program", "", "Program definition file (default: embedded credits)")
	rootCmd.Flags().StringVar(&functionID, "function", "", "Function name to execute")
	rootCmd.Flags().StringVar(&rootS, "root", "", "Global state root (sr1..., random if omitted)")
	rootCmd.Flags().StringVar(&inputsCSV, "inputs", "", "Comma-separated input ids (<n>field)")
	rootCmd.Flags().StringVar(&outputsCSV, "outputs", "", "Comma-separated output ids (<n>field)")
	rootCmd.Flags().StringVar(&outDir, "outdir", "./", "Output directory")
	_ = rootCmd.MarkFlagRequired("function")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
