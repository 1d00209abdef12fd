package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	app := App{Log: logrus.New()}
	if err := app.Command().Execute(); err != nil {
		os.Exit(1)
	}
}
