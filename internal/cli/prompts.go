package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// PromptString reads a single line from stdin after printing the label
func PromptString(label string) (string, error) {
	fmt.Printf("%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	value, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %s", err)
	}
	return strings.TrimSpace(value), nil
}

// PromptPassword reads a line from stdin with echoing disabled so that
// credentials never show up on screen or in terminal scrollback
func PromptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	value, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %s", err)
	}
	return string(value), nil
}
