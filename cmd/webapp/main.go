package main

import (
	"os"

	"github.com/eridiumdev/clickpay-web/cmd/webapp/commands"
)

// @title        ClickPay web gateway
// @version      1.0
// @description  Browser-facing gateway of the ClickPay link platform.
// @BasePath     /
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
