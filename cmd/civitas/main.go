package main

import "civitas/cmd/civitas/cmd"

// @title Civitas API
// @version 1.0
// @description Community events: listing, ownership-gated event management, and event participation.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity provider token.
func main() {
	cmd.Execute()
}
