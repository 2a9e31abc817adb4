package main

import (
	"go.uber.org/fx"

	"esignatures-go/internal/service"
)

func main() {
	fx.New(service.Modules()).Run()
}
