package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"nas5gs/internal/common/logger"
	"nas5gs/pkg/config"
	"nas5gs/pkg/nas"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	hexInput := flag.String("hex", "", "Message as a hex string (overrides file input)")
	inputPath := flag.String("in", "-", "Raw message file, - for stdin")
	indent := flag.Bool("indent", false, "Indent the JSON output")
	logLevel := flag.String("level", "", "Log level override")
	flag.Parse()

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	logger.ParseLogLevel(cfg.Log.Level)
	log := logger.InitLogger(map[string]string{"component": "nasdump"})

	data, err := readInput(*hexInput, *inputPath)
	if err != nil {
		log.Fatal("Failed to read input: %v", err)
	}
	log.Debug("Decoding %d byte(s)", len(data))

	tree, err := nas.Decode(data, cfg.Decode.Policy())
	if err != nil {
		log.Fatal("Decode refused the input: %v", err)
	}
	if tree.Failed(nas.SeverityError) {
		log.Warn("Decode finished with errors in the tree")
	}

	out, err := render(tree, cfg.Output.Format, *indent)
	if err != nil {
		log.Fatal("Failed to render output: %v", err)
	}
	fmt.Println(out)
}

func readInput(hexInput, inputPath string) ([]byte, error) {
	if hexInput != "" {
		clean := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' || r == ':' {
				return -1
			}
			return r
		}, hexInput)
		return hex.DecodeString(clean)
	}
	if inputPath == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(inputPath)
}

func render(tree *nas.Element, format string, indent bool) (string, error) {
	if indent || format == "json-indent" {
		return tree.JSONIndent()
	}
	return tree.JSON()
}
