// Load/dev helper: mints bearer tokens compatible with the API's signer
// and seeds a batch of deliveries through the admin endpoints.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mintToken(secret []byte, issuer, uid, email, name, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   issuer,
		"sub":   uid,
		"uid":   uid,
		"email": email,
		"name":  name,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func main() {
	secret := []byte(env("JWT_SECRET", "dev-secret"))
	issuer := env("JWT_ISSUER", "quickdeliver")
	baseURL := env("API_BASE_URL", "http://localhost:8080")
	tokensFile := env("TOKENS_FILE", "tests/load/tokens.csv")

	f, err := os.Create(tokensFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	fmt.Println("Generating 1000 user tokens...")
	for i := 0; i < 1000; i++ {
		uid := uuid.New().String()
		s, err := mintToken(secret, issuer, uid, fmt.Sprintf("user-%d@example.com", i), fmt.Sprintf("user-%d", i), "user")
		if err != nil {
			panic(err)
		}
		f.WriteString(s + "\n")
	}
	fmt.Println("Done generating tokens.")

	adminToken, err := mintToken(secret, issuer, uuid.New().String(), "tool-admin@example.com", "tool-admin", "admin")
	if err != nil {
		panic(err)
	}

	fmt.Println("Seeding deliveries via admin API...")
	client := &http.Client{Timeout: 5 * time.Second}
	for i := 0; i < 10; i++ {
		body, _ := json.Marshal(map[string]any{
			"item":          fmt.Sprintf("Load item %d", i),
			"customer_name": fmt.Sprintf("Customer %d", i),
			"address":       fmt.Sprintf("%d Test St", i+1),
			"date":          time.Now().Format("2006-01-02"),
		})

		req, err := http.NewRequest(http.MethodPost, baseURL+"/api/deliveries", bytes.NewReader(body))
		if err != nil {
			panic(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)

		resp, err := client.Do(req)
		if err != nil {
			fmt.Printf("request %d failed: %v\n", i, err)
			continue
		}
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			fmt.Printf("request %d: status=%d body=%s\n", i, resp.StatusCode, string(raw))
			continue
		}
	}
	fmt.Println("Done.")
}
