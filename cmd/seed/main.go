// Command seed populates a development database with a demo org, an admin
// user, an agent API key, and a handful of queued jobs. It prints the raw
// API key and a bearer token for the user — both are shown only here.
//
// Usage:
//
//	CONDUCTOR_JWT_SECRET=dev-secret go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	"github.com/conductor-ci/conductor/internal/auth"
	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/types"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seed failed:", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	jwtSecret := envOrDefault("CONDUCTOR_JWT_SECRET", "")
	if jwtSecret == "" {
		return fmt.Errorf("CONDUCTOR_JWT_SECRET is required")
	}

	gormDB, err := db.New(db.Config{
		Driver:   envOrDefault("CONDUCTOR_DB_DRIVER", "sqlite"),
		DSN:      envOrDefault("CONDUCTOR_DB_DSN", "./conductor.db"),
		Logger:   logger,
		LogLevel: gormlogger.Warn,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	orgs := repositories.NewOrgRepository(gormDB)
	users := repositories.NewUserRepository(gormDB)
	apiKeys := repositories.NewAPIKeyRepository(gormDB)
	jobs := repositories.NewJobRepository(gormDB)

	org := &db.Org{Name: "acme"}
	if err := orgs.Create(ctx, org); err != nil {
		return fmt.Errorf("create org: %w", err)
	}

	user := &db.User{
		OrgID:       org.ID,
		Email:       "admin@acme.test",
		DisplayName: "Acme Admin",
		Role:        string(types.UserRoleAdmin),
	}
	if err := users.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	rawKey, hash, err := auth.GenerateAPIKey()
	if err != nil {
		return err
	}
	key := &db.APIKey{
		OrgID:     org.ID,
		Name:      "dev-agent",
		KeyHash:   hash,
		CreatedBy: user.ID,
	}
	if err := apiKeys.Create(ctx, key); err != nil {
		return fmt.Errorf("create api key: %w", err)
	}

	jwtMgr, err := auth.NewJWTManager(jwtSecret, "conductor-server")
	if err != nil {
		return err
	}
	token, err := jwtMgr.IssueAccessToken(user.ID, org.ID, user.Role)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	prompts := []string{
		"Add input validation to the signup form",
		"Refactor the payment retry loop to use exponential backoff",
		"Write integration tests for the webhook receiver",
	}
	for _, prompt := range prompts {
		job := &db.Job{
			OrgID:                org.ID,
			Name:                 prompt,
			Description:          prompt,
			Status:               string(types.JobStatusQueued),
			Priority:             string(types.PriorityMedium),
			QueueType:            string(types.QueueNone),
			OrderInQueue:         -1,
			Source:               "seed",
			Prompt:               prompt,
			SourceMetadata:       "{}",
			UserAcceptanceStatus: string(types.AcceptanceNotReviewed),
			UserComments:         "[]",
			CreatedBy:            user.ID,
			UpdatedBy:            user.ID,
		}
		if err := jobs.Create(ctx, job); err != nil {
			return fmt.Errorf("create job: %w", err)
		}
		if err := jobs.InsertAtTail(ctx, job.ID, org.ID, types.QueueBacklog); err != nil {
			return fmt.Errorf("enqueue job: %w", err)
		}
	}

	fmt.Println("seeded demo data:")
	fmt.Println("  org:          ", org.ID)
	fmt.Println("  user:         ", user.Email, user.ID)
	fmt.Println("  agent api key:", rawKey)
	fmt.Println("  bearer token: ", token)
	fmt.Printf("  jobs queued:   %d (backlog)\n", len(prompts))
	return nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
