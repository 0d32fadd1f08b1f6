package main

import (
	"context"
	"os"

	"github.com/dendrascience/fsaudit/internal/cmd"
)

func main() {
	if err := cmd.Execute(context.Background(), cmd.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
