package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/codecrafters-io/sqlite-varint-go/internal/config"
	"github.com/codecrafters-io/sqlite-varint-go/internal/logging"
	"github.com/codecrafters-io/sqlite-varint-go/varint"
)

const usage = "Usage: sqlite-varint [flags] <decode|decode-all|encode|scan> <args...>"

var errUsage = errors.New(usage)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		}
		os.Exit(1)
	}
}

// run parses flags and configuration, then dispatches the command
func run(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("sqlite-varint", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	configPath, _ := fs.GetString("config")
	cfg, err := config.Load(configPath, fs)
	if err != nil {
		logging.Global().Error("Failed to load config", "error", err)
		return err
	}

	logger, closer, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		logging.Global().Error("Failed to create logger", "error", err)
		return err
	}
	defer closer.Close()
	prev := logging.Global()
	logging.SetGlobal(logger)
	defer logging.SetGlobal(prev)

	rest := fs.Args()
	if len(rest) < 2 {
		return errUsage
	}
	command, operands := rest[0], rest[1:]
	log := logger.With("command", command)

	switch command {
	case "decode":
		err = handleDecode(stdout, operands, cfg.Decoder.Width, log)
	case "decode-all":
		err = handleDecodeAll(stdout, operands, log)
	case "encode":
		err = handleEncode(stdout, operands, log)
	case "scan":
		err = handleScan(stdout, operands[0], cfg.Scan.Limit, log)
	default:
		log.Error("Unknown command")
		return errUsage
	}
	if err != nil {
		log.Error("Command failed", "error", err)
	}
	return err
}

// handleDecode decodes one varint per hex argument
func handleDecode(w io.Writer, operands []string, width int, log *logging.Logger) error {
	for _, arg := range operands {
		buf, err := parseHex(arg)
		if err != nil {
			return err
		}

		value, n, err := varint.DecodeWidth(buf, width)
		if err != nil {
			return fmt.Errorf("decode %s: %w", arg, err)
		}
		log.Debug("Decoded varint", "input", arg, "value", value, "bytes", n, "width", width)
		fmt.Fprintf(w, "%d %d\n", value, n)
	}
	return nil
}

// handleDecodeAll decodes every varint packed into each hex argument
func handleDecodeAll(w io.Writer, operands []string, log *logging.Logger) error {
	for _, arg := range operands {
		buf, err := parseHex(arg)
		if err != nil {
			return err
		}

		s := varint.NewScanner(buf)
		start := 0
		for s.Scan() {
			fmt.Fprintf(w, "%d %d\n", start, s.Value())
			start = s.Offset()
		}
		if err := s.Err(); err != nil {
			return fmt.Errorf("decode %s at offset %d: %w", arg, s.Offset(), err)
		}
		log.Debug("Decoded buffer", "input", arg, "bytes", s.Offset())
	}
	return nil
}

// handleEncode prints the hex encoding of each integer argument
func handleEncode(w io.Writer, operands []string, log *logging.Logger) error {
	for _, arg := range operands {
		v, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", arg, err)
		}

		enc := varint.Encode(v)
		log.Debug("Encoded varint", "value", v, "bytes", len(enc))
		fmt.Fprintln(w, hex.EncodeToString(enc))
	}
	return nil
}

// handleScan streams consecutive varints out of a file
func handleScan(w io.Writer, path string, limit int, log *logging.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	r := bufio.NewReader(file)
	count, offset := 0, 0
	for limit == 0 || count < limit {
		value, n, err := varint.Read(r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("scan %s at offset %d: %w", path, offset, err)
		}
		fmt.Fprintln(w, value)
		count++
		offset += n
	}

	log.Info("Scan complete", "file", path, "values", count, "bytes", offset)
	return nil
}

// parseHex accepts hex with an optional 0x prefix and space or underscore separators
func parseHex(s string) ([]byte, error) {
	clean := strings.NewReplacer(" ", "", "_", "").Replace(s)
	clean = strings.TrimPrefix(strings.TrimPrefix(clean, "0x"), "0X")
	buf, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return buf, nil
}
