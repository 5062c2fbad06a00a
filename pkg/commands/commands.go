// Package commands holds the actions of the domain-sync operator cli
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/content-services/domain-sync-backend/pkg/clients/registry_client"
	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/content-services/domain-sync-backend/pkg/dao"
	"github.com/content-services/domain-sync-backend/pkg/domainname"
	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/content-services/domain-sync-backend/pkg/jobs"
	"github.com/content-services/domain-sync-backend/pkg/reconcile"
	"github.com/content-services/domain-sync-backend/pkg/seeds"
	"github.com/content-services/domain-sync-backend/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

// Commands binds the cli actions to the store, the registry and the engine
type Commands struct {
	DB          *gorm.DB
	DaoRegistry *dao.DaoRegistry
	Client      registry_client.RegistryClient
	Reconciler  reconcile.Reconciler
}

var orgFlag = &cli.StringFlag{Name: "org", Usage: "organization id owning the domains", Required: true}

// App returns the cli with every operator command
func (cmds Commands) App() *cli.App {
	return &cli.App{
		Name:  "domain-sync-cli",
		Usage: "Inspect and reconcile custom domains against the remote registry",
		Commands: []*cli.Command{
			{
				Name:   "sync",
				Usage:  "Reconcile the domains of one organization, or all of them with --all",
				Flags:  []cli.Flag{&cli.StringFlag{Name: "org"}, &cli.BoolFlag{Name: "all"}},
				Action: cmds.SyncAction,
			},
			{
				Name:   "status",
				Usage:  "Show how every domain of an organization compares with the remote site",
				Flags:  []cli.Flag{orgFlag},
				Action: cmds.StatusAction,
			},
			{
				Name:   "test-connection",
				Usage:  "Check that the remote registry answers",
				Action: cmds.TestConnectionAction,
			},
			{
				Name:      "check",
				Usage:     "Look up whether a domain is attached to the remote site",
				ArgsUsage: "DOMAIN",
				Action:    cmds.CheckAction,
			},
			{
				Name:      "add",
				Usage:     "Add a domain for an organization and attach it remotely",
				ArgsUsage: "DOMAIN",
				Flags:     []cli.Flag{orgFlag},
				Action:    cmds.AddAction,
			},
			{
				Name:  "seed",
				Usage: "Insert random domain records, for development databases",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "org"},
					&cli.IntFlag{Name: "count", Value: 10},
					&cli.StringFlag{Name: "status", Usage: "pending, verified or error"},
				},
				Action: cmds.SeedAction,
			},
		},
	}
}

func (cmds Commands) SyncAction(c *cli.Context) error {
	ctx := c.Context
	if c.Bool("all") {
		summary, err := jobs.ReconcileOwners(ctx, cmds.DaoRegistry.Domain, cmds.Reconciler, config.Get().Options.SyncConcurrency)
		if err != nil {
			return err
		}
		return printJSON(c, summary)
	}
	org := c.String("org")
	if org == "" {
		return fmt.Errorf("--org or --all is required")
	}

	result, err := cmds.Reconciler.Reconcile(ctx, org)
	if printErr := printJSON(c, result); printErr != nil {
		return printErr
	}
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func (cmds Commands) StatusAction(c *cli.Context) error {
	status, err := cmds.Reconciler.SyncStatus(c.Context, c.String("org"))
	if err != nil {
		return err
	}
	return printJSON(c, status)
}

func (cmds Commands) TestConnectionAction(c *cli.Context) error {
	response := cmds.Client.TestConnection(c.Context)
	if err := printJSON(c, response); err != nil {
		return err
	}
	if !response.Reachable {
		return cli.Exit("registry unreachable", 1)
	}
	return nil
}

func (cmds Commands) CheckAction(c *cli.Context) error {
	domain := c.Args().First()
	if !domainname.IsValidFormat(domain) {
		return ce.NewSyncError(ce.ValidationError, fmt.Sprintf("Invalid domain format: %q", domain), nil)
	}
	response, err := cmds.Client.CheckDomain(c.Context, domainname.Normalize(domain))
	if err != nil {
		return err
	}
	return printJSON(c, response)
}

func (cmds Commands) AddAction(c *cli.Context) error {
	response, err := cmds.Reconciler.AddDomain(c.Context, c.String("org"), c.Args().First())
	if err != nil {
		return err
	}
	return printJSON(c, response)
}

func (cmds Commands) SeedAction(c *cli.Context) error {
	options := seeds.SeedOptions{OwnerID: c.String("org")}
	if status := c.String("status"); status != "" {
		if !config.ValidDomainStatus(status) {
			return fmt.Errorf("invalid status %q", status)
		}
		options.Status = utils.Ptr(status)
	}
	records, err := seeds.SeedDomainRecords(cmds.DB, c.Int("count"), options)
	if err != nil {
		return err
	}
	log.Info().Int("count", len(records)).Msg("seeded domain records")
	return nil
}

func printJSON(c *cli.Context, value interface{}) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, string(out))
	return err
}
