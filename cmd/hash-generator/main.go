// Command hash-generator prints bcrypt hashes for seeding users by hand.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phrazzld/gestor-tareas-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	passwords := flag.Args()
	if len(passwords) == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-cost N] password...")
		os.Exit(2)
	}

	hasher := auth.NewBcryptHasher(*cost)
	exit := 0
	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating hash: %v\n", err)
			exit = 1
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", password, hash)
	}
	os.Exit(exit)
}
