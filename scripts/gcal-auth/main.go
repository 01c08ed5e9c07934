// scripts/gcal-auth/main.go
//
// Run this once locally to authorize Google Calendar and Google Tasks access
// for an OAuth Desktop client and write token.json next to the service.
//
// Usage:
//   go run scripts/gcal-auth/main.go [google-credentials.json] [token.json]

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/pKa1/loveSonia/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	tokenPath := "token.json"
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Не удалось прочитать %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, gcalendar.Scopes...)
	if err != nil {
		log.Fatalf("Не удалось разобрать credentials: %v\nНужен файл OAuth-клиента типа Desktop App (%q).", err, credsPath)
	}

	authURL := config.AuthCodeURL("lovesonia", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Println("=================================================================")
	fmt.Println("ШАГ 1: откройте ссылку в браузере и войдите в Google-аккаунт:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("ШАГ 2: вставьте код авторизации и нажмите Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Не удалось прочитать код: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Обмен кода на токен не удался: %v", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Не удалось создать %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Не удалось записать %s: %v", tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("%s сохранён. Перезапустите сервис, чтобы подключить календарь:\n", tokenPath)
	fmt.Println("  docker compose restart backend")
}
