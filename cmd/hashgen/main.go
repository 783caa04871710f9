// hashgen produces bcrypt hashes for the ADMIN_PASS_HASH setting.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/notegate/backend/internal/password"
)

func main() {
	fmt.Println("Password hash generator")
	fmt.Println("Generates bcrypt hashes for ADMIN_PASS_HASH.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter password to hash (or 'quit' to exit): ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "quit") {
			break
		}
		if input == "" {
			fmt.Println("Password cannot be empty.")
			continue
		}

		hash, err := password.Hash(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
			continue
		}

		fmt.Printf("Generated hash: %s\n", hash)
		fmt.Printf("Add this to your .env file as ADMIN_PASS_HASH=%s\n\n", hash)
	}
}
