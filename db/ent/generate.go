package main

//go:generate go run .

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Regenerate the client with `go generate ./db/ent`. Paths are relative to
// this directory so the target lands at the repo-root gen/ent package.
func main() {
	err := entc.Generate(
		"./schema",
		&gen.Config{
			Target:  "../../gen/ent",
			Package: "github.com/hangarline/fleetdocs/gen/ent",
			Schema:  "github.com/hangarline/fleetdocs/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
