// File: cmd/auth-service/main.go
package main

import (
	"fmt"
	"os"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "auth-service: %v\n", err)
		os.Exit(1)
	}
}
