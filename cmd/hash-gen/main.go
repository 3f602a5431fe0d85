package main

import (
	"fmt"
	"log"
	"os"

	"merchant-portal.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = generateHash
	fatalfFn       = log.Fatalf
)

// defaultSeedPassword is the onboarding password handed to newly seeded
// back-office staff; they are forced to rotate it on first login.
const defaultSeedPassword = "BackOffice.Onboard-2026"

func resolvePassword(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultSeedPassword
}

func generateHash(password string) (string, error) {
	return crypto.HashPassword(password)
}

// hash-gen prints a bcrypt hash for the password_hash column of the staff
// users table. Pass the plaintext as the first argument, or omit it to hash
// the default onboarding password.
func main() {
	password := resolvePassword(os.Args[1:])

	printfFn("Generating hash for password: %s\n", password)

	hash, err := generateHashFn(password)
	if err != nil {
		fatalfFn("Failed to hash password: %v", err)
	}

	printfFn("Bcrypt Hash: %s\n", hash)
	printfFn("Store it in users.password_hash when seeding staff accounts.\n")
}
