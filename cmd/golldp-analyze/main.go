package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/d21d3q/golldp/pkg/golldp"
)

var rootCmd = &cobra.Command{
	Use:   "golldp-analyze [hex]",
	Short: "Decode LLDP frames from hex dumps",
	Long:  "golldp-analyze decodes captured LLDP frames using the golldp library.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runInteractive()
		}
		return runAnalyze(args[0])
	},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func runInteractive() error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("golldp analyze mode. Paste a hex frame and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runAnalyze(line); err != nil {
			logrus.WithError(err).Error("failed to decode frame")
		}
	}
	return scanner.Err()
}

func runAnalyze(hex string) error {
	result, err := golldp.AnalyzeHex(hex)
	if errors.Is(err, golldp.ErrNotLLDP) {
		logrus.Warn("frame is not LLDP (EtherType or destination MAC mismatch)")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}
