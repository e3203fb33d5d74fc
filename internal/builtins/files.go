// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"bytes"
	"io"
	"strings"
)

// FileProcessor processes a single reader with file context.
// Parameters:
//   - r: the input stream to process
//   - filename: the original filename argument (or "-" for stdin)
//   - index: 0-based index of current file (0 for stdin)
//   - total: total number of files being processed (0 for stdin)
type FileProcessor func(r io.Reader, filename string, index, total int) error

// ProcessFilesOrStdin processes files from args or stdin if no files given.
// For each file, it resolves relative paths against the handler's working
// directory and reads the content from the virtual filesystem. For stdin,
// the processor receives filename "-" with index=0 and total=0.
func ProcessFilesOrStdin(hc *HandlerContext, args []string, cmdName string, processor FileProcessor) error {
	if len(args) == 0 {
		return processor(hc.Stdin, "-", 0, 0)
	}

	total := len(args)
	for i, file := range args {
		if file == "-" {
			if err := processor(hc.Stdin, "-", i, total); err != nil {
				return err
			}
			continue
		}
		content, err := hc.FS.ReadFile(hc.Resolve(file))
		if err != nil {
			return wrapError(cmdName, err)
		}
		if err := processor(bytes.NewReader(content), file, i, total); err != nil {
			return err
		}
	}
	return nil
}

// readAllString drains r into a string.
func readAllString(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// splitLines splits text into lines without counting a trailing newline as an
// extra empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
