package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Confirm prompts the user with a yes/no question. Returns true for yes.
func Confirm(prompt string) bool {
	fmt.Printf("%s [s/N]: ", StyleWarning.Render(prompt))
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "s" || line == "sim" || line == "y" || line == "yes"
}

// ReadLine prompts for one line of input and returns it trimmed.
func ReadLine(prompt string) string {
	fmt.Printf("%s: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// ReadPassword prompts for a password without echoing it.
func ReadPassword(prompt string) (string, error) {
	fmt.Printf("%s: ", prompt)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("lendo senha: %w", err)
	}
	return string(data), nil
}
