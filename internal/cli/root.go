package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tohsaka888/societies-server/internal/api"
	"github.com/tohsaka888/societies-server/internal/core/repository"
	"github.com/tohsaka888/societies-server/internal/core/service"
	"github.com/tohsaka888/societies-server/internal/infrastructure/sqlite"
	"github.com/tohsaka888/societies-server/internal/logging"
	"github.com/tohsaka888/societies-server/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "societies",
	Short: "Societies - student competition sign-up server",
	Long: `Societies serves the backend of a student society website.

It provides:
- Account registration and login with signed session tokens
- Competition sign-ups with profile snapshots
- Site content (articles, competitions, pages, awards, images)
- A WebSocket echo listener`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML); SOCIETIES_* variables override it")
}

// Services holds all initialized services
type Services struct {
	DB         *sqlite.DB
	Log        logging.Logger
	SignUpRepo repository.SignUpRepository
	API        api.Services
}

// initServices opens the store and builds every service from cfg.
func initServices() (*Services, error) {
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return nil, err
	}

	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	key, err := service.NewSigningKey(cfg.JWTSecretKey)
	if err != nil {
		db.Close()
		return nil, err
	}
	tokens := service.NewTokenService(key, cfg.TokenTTL)

	credentialRepo := sqlite.NewCredentialRepository(db)
	profileRepo := sqlite.NewProfileRepository(db)
	adminRepo := sqlite.NewAdminRepository(db)
	signUpRepo := sqlite.NewSignUpRepository(db)
	documentRepo := sqlite.NewDocumentRepository(db)

	return &Services{
		DB:         db,
		Log:        log,
		SignUpRepo: signUpRepo,
		API: api.Services{
			Auth:    service.NewAuthService(credentialRepo, profileRepo, tokens, log),
			Admin:   service.NewAdminService(adminRepo),
			SignUp:  service.NewSignUpService(signUpRepo, profileRepo, log),
			Content: service.NewContentService(documentRepo),
		},
	}, nil
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
