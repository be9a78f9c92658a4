package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirm prints prompt and reads a y/N answer from in. Anything other
// than "y" or "yes" (including EOF) counts as no.
func Confirm(in io.Reader, prompt string) bool {
	fmt.Fprintf(os.Stdout, "%s (y/N): ", prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(os.Stdout)
		return false
	}

	response := strings.ToLower(strings.TrimSpace(line))
	return response == "y" || response == "yes"
}
