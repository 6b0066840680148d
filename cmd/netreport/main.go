// Package main provides the netreport command. It reads a device inventory
// file, computes the report aggregates and writes a formatted status report
// to disk, confirming the output path on stdout.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/netrapport/core/internal/parser"
	"github.com/netrapport/core/internal/report"
)

const (
	defaultInputPath  = "data/network_devices.json"
	defaultOutputPath = "output/network_report.txt"
)

var rootCmd = &cobra.Command{
	Use:   "netreport",
	Short: "Generates a network status report from a device inventory file.",
	Run:   executeReport,
}

var (
	inputPath  string
	outputPath string
)

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", defaultInputPath, "Path to the device inventory JSON file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", defaultOutputPath, "Path of the report file to write")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func executeReport(cmd *cobra.Command, args []string) {
	if err := generateReport(inputPath, outputPath, time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generateReport(inputPath, outputPath string, now time.Time) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read inventory file: %w", err)
	}
	inv, err := parser.ParseInventory(data)
	if err != nil {
		return err
	}
	devices := parser.FlattenDevices(inv)
	summary := report.BuildSummary(devices)
	lines := report.Render(inv, summary, now)
	if err := report.WriteReport(outputPath, lines); err != nil {
		return err
	}
	fmt.Printf("OK: Skapade %s\n", outputPath)
	return nil
}
