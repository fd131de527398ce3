package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yourorg/snarkexec/pkg/execution"
	"github.com/yourorg/snarkexec/pkg/program"
	"github.com/yourorg/snarkexec/pkg/query"
	"github.com/yourorg/snarkexec/pkg/vm"
)

func main() {
	var execPath, vkPath, programPath, functionID, queryPath, ledgerURL string

	cmd := &cobra.Command{
		Use:   "verifier",
		Short: "Verify a zero-knowledge function execution",
		RunE: func(cmd *cobra.Command, _ []string) error {
			execBytes, err := os.ReadFile(execPath)
			if err != nil {
				return err
			}
			exec, err := execution.FromString(string(execBytes))
			if err != nil {
				return err
			}

			vkBytes, err := os.ReadFile(vkPath)
			if err != nil {
				return err
			}
			vk, err := vm.ParseVerifyingKey(string(vkBytes))
			if err != nil {
				return err
			}

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

			var q query.Query
			switch {
			case queryPath != "":
				raw, err := os.ReadFile(queryPath)
				if err != nil {
					return err
				}
				if q, err = query.FromString(string(raw)); err != nil {
					return err
				}
			default:
				if ledgerURL == "" {
					_ = godotenv.Load()
					ledgerURL = os.Getenv("LEDGER_URL")
				}
				if ledgerURL != "" {
					cli, err := query.DialContext(cmd.Context(), ledgerURL)
					if err != nil {
						return err
					}
					defer cli.Close()
					q = cli
				}
			}

			ok, err := vm.VerifyFunctionExecutionWithQuery(exec, vk, prog, functionID, q)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("execution does not verify")
			}
			fmt.Println("execution verified ✅")
			return nil
		},
	}

	cmd.Flags().StringVar(&execPath, "execution", "", "execution.json")
	cmd.Flags().StringVar(&vkPath, "vk", "", "verifier key file")
	cmd.Flags().StringVar(&programPath, "program", "", "Program definition file (default: embedded credits)")
	cmd.Flags().StringVar(&functionID, "function", "", "Function name the execution claims")
	cmd.Flags().StringVar(&queryPath, "query", "", "Offline query JSON with state root and paths")
	cmd.Flags().StringVar(&ledgerURL, "ledger", "", "Optional ledger RPC endpoint for state paths")
	_ = cmd.MarkFlagRequired("execution")
	_ = cmd.MarkFlagRequired("vk")
	_ = cmd.MarkFlagRequired("function")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
