package main

import (
	api "github.com/jaekwan-dev/soccer-schedule-manager/api"
)

func main() {
	api.Run()
}
