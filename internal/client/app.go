package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-swift-codes/internal/adapter"
	"github.com/MKhiriev/go-swift-codes/internal/config"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/service"
	"github.com/MKhiriev/go-swift-codes/models"
	"github.com/spf13/cobra"
)

// ClientFactory builds the server client once flags are applied.
type ClientFactory func(cfg config.ClientAdapter, logger *logger.Logger) (adapter.SwiftCodesClient, error)

type App struct {
	root *cobra.Command

	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo

	newClient ClientFactory
	client    adapter.SwiftCodesClient

	out    io.Writer
	logger *logger.Logger
}

type tokenOutput struct {
	Token     string    `json:"token"`
	Subject   string    `json:"subject"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type versionOutput struct {
	ClientVersion string `json:"clientVersion"`
	BuildDate     string `json:"buildDate"`
	BuildCommit   string `json:"buildCommit"`
	ServerVersion string `json:"serverVersion,omitempty"`
}

// NewApp builds the swiftctl command tree backed by the REST adapter.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) *App {
	return newApp(cfg, buildInfo, newHTTPClient, os.Stdout, log)
}

func newHTTPClient(cfg config.ClientAdapter, log *logger.Logger) (adapter.SwiftCodesClient, error) {
	return adapter.NewHTTPSwiftCodesClient(cfg, log)
}

func newApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, newClient ClientFactory, out io.Writer, log *logger.Logger) *App {
	a := &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		newClient: newClient,
		out:       out,
		logger:    log,
	}
	a.root = a.rootCommand()
	return a
}

// Run executes the command named by os.Args.
func (a *App) Run(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, mainly for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "swiftctl",
		Short:         "Query and manage the SWIFT codes directory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Adapter.HTTPAddress, "server", a.cfg.Adapter.HTTPAddress, "server address (env ADAPTER_ADDRESS)")
	flags.DurationVar(&a.cfg.Adapter.RequestTimeout, "timeout", a.cfg.Adapter.RequestTimeout, "request timeout (env ADAPTER_REQUEST_TIMEOUT)")
	flags.StringVar(&a.cfg.Adapter.Token, "token", a.cfg.Adapter.Token, "bearer token for add and delete (env ADAPTER_TOKEN)")

	root.AddCommand(
		a.getCommand(),
		a.countryCommand(),
		a.addCommand(),
		a.deleteCommand(),
		a.tokenCommand(),
		a.versionCommand(),
	)

	return root
}

// connect validates the configuration after flags were parsed and builds
// the server client.
func (a *App) connect(*cobra.Command, []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	client, err := a.newClient(a.cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("create server client: %w", err)
	}
	a.client = client

	return nil
}

func (a *App) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get SWIFT_CODE",
		Short:   "Show a bank; headquarters include their branches",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := a.client.GetBank(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(bank)
		},
	}
}

func (a *App) countryCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "country ISO2",
		Short:   "List every bank of a country",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			banks, err := a.client.GetCountryBanks(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(banks)
		},
	}
}

func (a *App) addCommand() *cobra.Command {
	var request models.BankRequest

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a bank",
		Args:    cobra.NoArgs,
		PreRunE: a.connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			request.IsHeadquarter = models.IsHeadquarterCode(request.SwiftCode)

			message, err := a.client.AddBank(cmd.Context(), request)
			if err != nil {
				return err
			}
			return a.print(message)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&request.SwiftCode, "swift-code", "", "SWIFT code, 8 or 11 characters")
	flags.StringVar(&request.BankName, "bank-name", "", "bank name")
	flags.StringVar(&request.Address, "address", "", "bank address")
	flags.StringVar(&request.CountryISO2, "country-iso2", "", "ISO 3166 alpha-2 country code")
	flags.StringVar(&request.CountryName, "country-name", "", "country name")
	for _, name := range []string{"swift-code", "bank-name", "address", "country-iso2", "country-name"} {
		cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (a *App) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete SWIFT_CODE",
		Short:   "Delete a bank",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.DeleteBank(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(message)
		},
	}
}

func (a *App) tokenCommand() *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an operator token with the shared sign key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := service.NewAuthService(config.App{
				TokenSignKey:  a.cfg.App.TokenSignKey,
				TokenIssuer:   a.cfg.App.TokenIssuer,
				TokenDuration: a.cfg.App.TokenDuration,
			}, a.logger)

			token, err := auth.CreateToken(cmd.Context(), subject)
			if err != nil {
				return err
			}

			out := tokenOutput{Token: token.SignedString, Subject: token.Subject}
			if token.ExpiresAt != nil {
				out.ExpiresAt = token.ExpiresAt.UTC()
			}
			return a.print(out)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "operator name stored in the token")
	cmd.MarkFlagRequired("subject")

	return cmd
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client build and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := versionOutput{
				ClientVersion: a.buildInfo.BuildVersion(),
				BuildDate:     a.buildInfo.BuildDate(),
				BuildCommit:   a.buildInfo.BuildCommit(),
			}

			if err := a.connect(cmd, args); err != nil {
				return err
			}
			serverVersion, err := a.client.Version(cmd.Context())
			if err != nil {
				a.logger.Warn().Err(err).Msg("server version is unavailable")
			}
			out.ServerVersion = serverVersion

			return a.print(out)
		},
	}
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
