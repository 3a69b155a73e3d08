package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/teenjuna/arraylist/internal/script"
)

var format string

var rootCmd = &cobra.Command{
	Use:   "arraylist",
	Short: "Replay list operations from a YAML script",
}

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Apply the operations of a script to a new list and print the results",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func init() {
	runCmd.Flags().StringVarP(&format, "format", "f", "text", "format of the final list: text, json or yaml")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func runScript(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	s, err := script.Load(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	list, err := s.Run(out)
	if err != nil {
		return err
	}

	dump, err := script.Encode(list, format)
	if err != nil {
		return err
	}
	_, err = out.Write(dump)
	return err
}
