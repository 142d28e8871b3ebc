// @title           WorkNest API
// @version         1.0
// @description     Job board backend: accounts, postings, applications and interview scheduling.
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "worknest_backend/internal/app"

func main() {
	app.Run()
}
