package exaroton_test

import (
	"context"
	"fmt"
	"log"

	"github.com/exaroton/exaroton-go/pkg/exaroton"
)

func ExampleNewClient() {
	client, err := exaroton.NewClient("your-api-token")
	if err != nil {
		log.Fatal(err)
	}

	account, err := client.GetAccount(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s has %.2f credits\n", account.Name, account.Credits)
}

func ExampleClient_GetServers() {
	client, err := exaroton.NewClient("your-api-token")
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	servers, err := client.GetServers(ctx)
	if err != nil {
		log.Fatal(err)
	}

	for _, server := range servers {
		if server.HasStatus(exaroton.StatusOffline, exaroton.StatusCrashed) {
			if err := server.Start(ctx); err != nil {
				log.Printf("starting %s: %v", server.Name, err)
			}
		}
	}
}
