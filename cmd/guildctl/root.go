package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"guildbook/internal/client"
	"guildbook/internal/domain/entity"
	"guildbook/internal/infra/sessionstore"

	"github.com/spf13/cobra"
)

const (
	defaultServer = "http://localhost:8080"
	envPassword   = "GUILDBOOK_PASSWORD"
)

// cli carries state shared by every subcommand.
type cli struct {
	sessionFile string
	verbose     bool
	api         *client.Client
	store       *sessionstore.Store
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "guildctl",
		Short: "Manage a guildbook guild from the terminal",
		Long: `guildctl talks to a guildbook server. Log in once with "guildctl login";
the guild id and password are remembered and used to log in again whenever
the server session expires.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.sessionFile, "session-file", "", "session file (default is the user config dir)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log re-authentication and HTTP details")

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.guildsCmd(),
		c.stateCmd(),
		c.depositCmd(),
		c.withdrawCmd(),
		c.convertCmd(),
		c.memberCmd(),
		c.calendarCmd(),
		c.callCmd(),
	)

	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	path := c.sessionFile
	if path == "" {
		var err error
		if path, err = sessionstore.DefaultPath(); err != nil {
			return err
		}
	}
	c.store = sessionstore.New(path)

	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	c.api = client.New(c.store, client.WithLogger(logger))

	return nil
}

// password returns the --password flag or, when empty, the environment variable.
func password(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if pw := os.Getenv(envPassword); pw != "" {
		return pw, nil
	}

	return "", fmt.Errorf("password required: use --password or %s", envPassword)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func printSummary(w io.Writer, s *entity.GuildState) {
	fmt.Fprintf(w, "%s (%s)\n", s.GuildName, s.ID)
	fmt.Fprintf(w, "  Carteira: %g TC, %g TS, %g TO, %g LO\n", s.Wallet.TC, s.Wallet.TS, s.Wallet.TO, s.Wallet.LO)
	fmt.Fprintf(w, "  Data: %02d/%02d/%d\n", s.Calendar.Day, s.Calendar.Month, s.Calendar.Year)
	fmt.Fprintf(w, "  Membros: %d  Itens: %d  Bases: %d  Domínios: %d  NPCs: %d  Missões: %d\n",
		len(s.Members), len(s.Items), len(s.Bases), len(s.Domains), len(s.NPCs), len(s.Quests))
}

// printMutation shows the operation result when there is one, then the new state summary.
func printMutation(w io.Writer, res *client.MutationResult) error {
	if len(res.Result) > 0 && string(res.Result) != "null" {
		var v any
		if err := json.Unmarshal(res.Result, &v); err != nil {
			return err
		}
		if err := printJSON(w, v); err != nil {
			return err
		}
	}
	if res.State != nil {
		printSummary(w, res.State)
	}

	return nil
}
