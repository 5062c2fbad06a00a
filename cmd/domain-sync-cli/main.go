package main

import (
	"context"
	"os"

	"github.com/content-services/domain-sync-backend/pkg/clients/registry_client"
	"github.com/content-services/domain-sync-backend/pkg/commands"
	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/content-services/domain-sync-backend/pkg/dao"
	"github.com/content-services/domain-sync-backend/pkg/db"
	"github.com/content-services/domain-sync-backend/pkg/reconcile"
	"github.com/rs/zerolog/log"
)

func main() {
	config.Load()
	config.ConfigureLogging()
	if err := db.Connect(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	ctx := log.Logger.WithContext(context.Background())
	daoReg := dao.GetDaoRegistry(db.DB)
	client := registry_client.NewClient()
	reconciler, err := reconcile.NewConfiguredReconciler(ctx, daoReg, client, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not build reconciler")
	}

	cmds := commands.Commands{DB: db.DB, DaoRegistry: daoReg, Client: client, Reconciler: reconciler}
	if err := cmds.App().RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
