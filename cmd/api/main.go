package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Apurer/go-gin-restaurant-api/internal/app/api"
)

func main() {
	if err := api.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
