//go:build ignore
// +build ignore

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// blocks we keep in the excerpt, matched by substring of the block name
var keep = []string{
	"Basic Latin", "Latin-1 Supplement", "Combining Diacritical Marks",
	"Hebrew", "Arabic", "Syriac", "General Punctuation",
	"Alphabetic Presentation Forms", "Variation Selectors",
	"Combining Half Marks", "Siyaq",
}

func main() {
	err := downloadBlocks("https://www.unicode.org/Public/15.0.0/ucd/Blocks.txt", "Blocks.txt")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to download: %v\n", err)
		os.Exit(1)
	}
}

func downloadBlocks(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read: %w", err)
	}

	out := bytes.NewBuffer(make([]byte, 0, 2048))
	fmt.Fprintf(out, "# Blocks-15.0.0.txt\n# Excerpt, generated by download.go\n")
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "# Unicode") || strings.HasPrefix(line, "# Copyright") ||
			strings.HasPrefix(line, "# For terms") {
			fmt.Fprintf(out, "#\n%s\n", line)
			continue
		}
		if line == "" || line[0] == '#' {
			continue
		}
		for _, k := range keep {
			if strings.Contains(line, k) {
				fmt.Fprintln(out, line)
				break
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to scan: %w", err)
	}
	fmt.Fprintf(out, "\n# EOF\n")
	return writeFile(path, out)
}

func writeFile(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}

	_, err = io.Copy(f, r)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}

	return nil
}
