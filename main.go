// Package main is the entry point for the tubevault application.
package main

import (
	"github.com/samber/lo"
	"github.com/tubevault/tubevault/cmd"
	"github.com/tubevault/tubevault/config"
	"github.com/tubevault/tubevault/internal/cache"
	"github.com/tubevault/tubevault/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage()

	cmd.Execute()
}
