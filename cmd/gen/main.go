package main

import (
	"harvest/internal/infra/persistence/postgres"

	"gorm.io/gen"
)

// Generates typed query helpers for the persistence models.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(postgres.Models()...)

	g.Execute()
}
