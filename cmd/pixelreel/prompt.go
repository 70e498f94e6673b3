package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// promptString asks the user for a value on stdin when a required flag
// was left empty, mirroring the original tool's interactive fallback.
func promptString(label string) string {
	color.New(color.FgCyan).Printf("%s: ", label)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// confirm asks a yes/no question, defaulting to no on empty input.
func confirm(label string) bool {
	fmt.Print(color.YellowString("%s [y/N]: ", label))
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
