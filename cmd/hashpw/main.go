// hashpw prints the bcrypt digest of a password, for building the
// HASHED_PASSWORDS environment variable.
package main

import (
	"fmt"
	"log"
	"os"

	"pos-loyalty-gateway/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}

	digest, err := auth.HashPassword(os.Args[1])
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	fmt.Println(digest)
}
