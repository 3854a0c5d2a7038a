package main

import (
	"fmt"
	"os"

	"jobboard-backend/pkg/auth"
)

// Prints a bcrypt hash for each password given on the command line, for
// seeding users directly in the database.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password> [password...]")
		os.Exit(1)
	}

	hasher := auth.NewPasswordHasher()
	for _, pass := range os.Args[1:] {
		hash, err := hasher.Hash(pass)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			continue
		}
		fmt.Printf("%s\n  %s\n", pass, hash)
	}
}
