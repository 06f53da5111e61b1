// cmd/gfa2fa/main.go
package main

import (
	"gfa2fa/internal/app"
	"gfa2fa/internal/appshell"
)

func main() {
	appshell.Main(app.ExitInterrupted, app.RunContext)
}
