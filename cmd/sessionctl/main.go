package main

import "github.com/SaiNageswarS/chatbot-api/cmd/sessionctl/cmd"

func main() {
	cmd.Execute()
}
