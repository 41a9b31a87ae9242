package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/text/transform"

	"github.com/scalecode-solutions/utf8chars"
)

var (
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func main() {
	var (
		verbose  = flag.Bool("v", false, "Log replaced bytes to stderr")
		sanitize = flag.Bool("sanitize", false, "Copy the input to stdout with ill-formed sequences replaced by U+FFFD")
		runes    = flag.Bool("runes", false, "List every character with its offset and code point")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: utf8chars [-v] [-sanitize | -runes] [file ...]")
		fmt.Fprintln(os.Stderr, "Reads standard input if no file is given.")
		flag.PrintDefaults()
	}
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
	}
	defer log.Sync()
	utf8chars.SetLogger(log)

	names := flag.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}
	for _, name := range names {
		if err := run(name, *sanitize, *runes, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func run(name string, sanitize, runes bool, w io.Writer) error {
	r, closeInput, err := open(name)
	if err != nil {
		return err
	}
	defer closeInput()

	if sanitize {
		if _, err := io.Copy(w, transform.NewReader(r, utf8chars.Sanitizer)); err != nil {
			return fmt.Errorf("sanitize %s: %w", name, err)
		}
		return nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if runes {
		return listRunes(w, data)
	}
	return report(w, name, data)
}

func open(name string) (io.Reader, func() error, error) {
	if name == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open file: %w", err)
	}
	return f, f.Close, nil
}

// report prints the size, character count and validity of data.
func report(w io.Writer, name string, data []byte) error {
	chars := utf8chars.CharsLen(utf8chars.Sanitize(data))
	status := validStyle.Render("valid")
	var invalid *utf8chars.InvalidUTF8Error
	if err := utf8chars.Validate(data); errors.As(err, &invalid) {
		status = invalidStyle.Render(fmt.Sprintf("invalid at offset %d", invalid.Offset))
	}
	_, err := fmt.Fprintf(w, "%s: %d bytes, %d chars, %s\n", name, len(data), chars, status)
	return err
}

// listRunes prints one line per character: offset, code point, and bytes.
func listRunes(w io.Writer, data []byte) error {
	for it := utf8chars.AsChars(data).Begin(); !it.Done(); it.Next() {
		mark := ""
		if !it.Valid() {
			mark = " " + invalidStyle.Render("ill-formed")
		}
		if _, err := fmt.Fprintf(w, "%8d  U+%04X  %q%s\n", it.Pos(), it.Rune(), it.Value(), mark); err != nil {
			return err
		}
	}
	return nil
}
