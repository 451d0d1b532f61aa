// Command token mints an access token for local testing of the API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/config"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/jwt"
)

func main() {
	employeeID := flag.String("employee", "", "employee id placed in the token")
	role := flag.String("role", string(jwt.RoleEmployee), "employee or manager")
	flag.Parse()

	if *employeeID == "" {
		fmt.Fprintln(os.Stderr, "-employee is required")
		flag.Usage()
		os.Exit(2)
	}

	parsedRole, err := jwt.ParseRole(*role)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	token, expiresAt, err := JWTService.GenerateAccessToken(*employeeID, parsedRole)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
}
