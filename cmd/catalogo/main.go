package main

import (
	"github.com/Antonio-99/catalogo/internal/config"
	"github.com/Antonio-99/catalogo/internal/logger"
	"github.com/Antonio-99/catalogo/internal/migration"
	"github.com/Antonio-99/catalogo/internal/server"
	"github.com/Antonio-99/catalogo/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,

		// HTTP surface and catalog domains
		server.Module,
		migration.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
