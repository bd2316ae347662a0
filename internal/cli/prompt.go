package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readPassword is swapped out by tests.
var readPassword = promptPassword

// promptPassword reads a password twice from the terminal without echo.
func promptPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())

	fmt.Printf("Enter %s: ", label)
	password, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Printf("Confirm %s: ", label)
	confirm, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(password) == 0 {
		return "", fmt.Errorf("password must not be empty")
	}

	return string(password), nil
}
