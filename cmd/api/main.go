package main

import (
	"go.uber.org/fx"

	"github.com/procurehq/procure/internal/app"
)

func main() {
	fx.New(app.Module).Run()
}
