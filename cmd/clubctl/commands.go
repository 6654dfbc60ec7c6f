package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desbravaprovas/clubcore/internal/auth"
	"github.com/desbravaprovas/clubcore/internal/config"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/repository"
	"github.com/desbravaprovas/clubcore/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	userName     string
	userPassword string
	userRole     string
	actorEmail   string
	dryRun       bool
	batchSize    int
)

func init() {
	createUserCmd.Flags().StringVar(&userName, "name", "", "Display name")
	createUserCmd.Flags().StringVar(&userPassword, "password", "", "Initial password (min 8 characters)")
	createUserCmd.Flags().StringVar(&userRole, "role", string(model.GlobalRoleUser), "Global role: MASTER, REGIONAL or USUARIO")
	createUserCmd.MarkFlagRequired("name")
	createUserCmd.MarkFlagRequired("password")

	for _, c := range []*cobra.Command{linkRegionalCmd, unlinkRegionalCmd} {
		c.Flags().StringVar(&actorEmail, "as", "", "Email of the MASTER account performing the change")
		c.MarkFlagRequired("as")
	}

	reconcileCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print what would be written without changing Permify")
	reconcileCmd.Flags().IntVar(&batchSize, "batch-size", 100, "Number of relationships written per request")
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: withEnv(func(ctx context.Context, e *env, _ []string) error {
		if err := repository.AutoMigrate(e.db.WithContext(ctx)); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}
		fmt.Println("Schema migrated successfully")
		return nil
	}),
}

var createUserCmd = &cobra.Command{
	Use:   "create-user [email]",
	Short: "Create an account",
	Args:  cobra.ExactArgs(1),
	RunE: withEnv(func(ctx context.Context, e *env, args []string) error {
		identity := newIdentityService(e)
		u, err := identity.CreateUser(ctx, service.CreateUserInput{
			Email:      args[0],
			Name:       userName,
			Password:   userPassword,
			GlobalRole: model.GlobalRole(userRole),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created %s (%s) with role %s\n", u.Email, u.ID, u.GlobalRole)
		return nil
	}),
}

var setRoleCmd = &cobra.Command{
	Use:   "set-role [email] [MASTER|REGIONAL|USUARIO]",
	Short: "Change the global role of an account",
	Args:  cobra.ExactArgs(2),
	RunE: withEnv(func(ctx context.Context, e *env, args []string) error {
		u, err := newIdentityService(e).SetGlobalRole(ctx, args[0], model.GlobalRole(args[1]))
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", u.Email, u.GlobalRole)
		return nil
	}),
}

var linkRegionalCmd = &cobra.Command{
	Use:   "link-regional [regional-email] [club-id]",
	Short: "Grant a REGIONAL account supervision over a club",
	Args:  cobra.ExactArgs(2),
	RunE: withEnv(func(ctx context.Context, e *env, args []string) error {
		svc, actorID, regionalID, clubID, err := regionalCommand(ctx, e, args)
		if err != nil {
			return err
		}
		link, err := svc.LinkClub(ctx, actorID, regionalID, clubID)
		if err != nil {
			return err
		}
		fmt.Printf("Linked regional %s to club %s\n", link.RegionalID, link.ClubID)
		return nil
	}),
}

var unlinkRegionalCmd = &cobra.Command{
	Use:   "unlink-regional [regional-email] [club-id]",
	Short: "Revoke a REGIONAL account's supervision over a club",
	Args:  cobra.ExactArgs(2),
	RunE: withEnv(func(ctx context.Context, e *env, args []string) error {
		svc, actorID, regionalID, clubID, err := regionalCommand(ctx, e, args)
		if err != nil {
			return err
		}
		if err := svc.UnlinkClub(ctx, actorID, regionalID, clubID); err != nil {
			return err
		}
		fmt.Printf("Unlinked regional %s from club %s\n", regionalID, clubID)
		return nil
	}),
}

var writeSchemaCmd = &cobra.Command{
	Use:   "write-schema",
	Short: "Install the club relationship schema in the Permify tenant",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cfg.Permify.Host == "" {
			return fmt.Errorf("PERMIFY_HOST is not set")
		}
		permify, err := newPermify(&env{cfg: cfg})
		if err != nil {
			return err
		}

		version, err := permify.WriteSchema(ctx, auth.ClubSchema)
		if err != nil {
			return err
		}
		fmt.Printf("Schema written, version %s\nSet PERMIFY_SCHEMA_VERSION=%s to pin it\n", version, version)
		return nil
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Rewrite the Permify relationship mirror from the database",
	RunE: withEnv(func(ctx context.Context, e *env, _ []string) error {
		if e.cfg.Permify.Host == "" {
			return fmt.Errorf("PERMIFY_HOST is not set")
		}
		permify, err := newPermify(e)
		if err != nil {
			return err
		}

		reconciler := service.NewRelationshipReconciler(
			repository.NewMembershipRepository(e.db),
			repository.NewRegionalRepository(e.db),
			permify,
			0,
			e.logger,
		)
		reconciler.SetBatchSize(batchSize)

		start := time.Now()
		report, err := reconciler.Run(ctx, dryRun)
		if err != nil {
			return fmt.Errorf("reconciliation failed: %w", err)
		}

		fmt.Printf("Memberships: %d, supervisions: %d, written: %d, failed: %d (%s)\n",
			report.Memberships, report.Supervisions, report.Written, report.Failed, time.Since(start).Round(time.Millisecond))
		if report.Failed > 0 {
			return fmt.Errorf("%d relationships could not be written", report.Failed)
		}
		return nil
	}),
}

func newIdentityService(e *env) *service.IdentityService {
	return service.NewIdentityService(
		repository.NewUserRepository(e.db),
		auth.NewPasswordHasher(),
		auth.NewTokenManager(e.cfg.JWT.Secret, e.cfg.JWT.ExpiryPeriod),
		e.logger,
	)
}

func newPermify(e *env) (*auth.PermifyService, error) {
	permify, err := auth.NewPermifyService(e.cfg.Permify.Host,
		auth.WithTenant(e.cfg.Permify.Tenant),
		auth.WithSchemaVersion(e.cfg.Permify.SchemaVersion),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to permify: %w", err)
	}
	return permify, nil
}

// regionalCommand builds a RegionalService that audits and mirrors like the API
// and resolves the actor, regional and club arguments.
func regionalCommand(ctx context.Context, e *env, args []string) (*service.RegionalService, uuid.UUID, uuid.UUID, uuid.UUID, error) {
	clubID, err := uuid.Parse(args[1])
	if err != nil {
		return nil, uuid.Nil, uuid.Nil, uuid.Nil, fmt.Errorf("invalid club id %q", args[1])
	}

	users := repository.NewUserRepository(e.db)
	actor, err := users.FindByEmail(ctx, actorEmail)
	if err != nil {
		return nil, uuid.Nil, uuid.Nil, uuid.Nil, fmt.Errorf("loading actor %s: %w", actorEmail, err)
	}
	regional, err := users.FindByEmail(ctx, args[0])
	if err != nil {
		return nil, uuid.Nil, uuid.Nil, uuid.Nil, fmt.Errorf("loading regional %s: %w", args[0], err)
	}

	clubs := repository.NewClubRepository(e.db)
	memberships := repository.NewMembershipRepository(e.db)
	regionals := repository.NewRegionalRepository(e.db)
	authority := service.NewAuthorityService(users, clubs, memberships, regionals)

	collab := service.Collaborators{
		Audit:  service.NewAuditLogService(repository.NewAuditLogRepository(e.db), authority, service.SystemClock),
		Logger: e.logger,
	}
	if e.cfg.Permify.Host != "" {
		permify, err := newPermify(e)
		if err != nil {
			return nil, uuid.Nil, uuid.Nil, uuid.Nil, err
		}
		collab.Sync = service.NewRelationshipSync(permify)
	}

	svc := service.NewRegionalService(authority, users, clubs, regionals, collab)
	return svc, actor.ID, regional.ID, clubID, nil
}
