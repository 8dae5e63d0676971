package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) loginCmd() *cobra.Command {
	var server, pw string

	cmd := &cobra.Command{
		Use:   "login GUILD_ID",
		Short: "Open a session on a guild and remember it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := password(pw)
			if err != nil {
				return err
			}

			state, err := c.api.Login(cmd.Context(), server, args[0], secret)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), state)

			return nil
		},
	}
	cmd.Flags().StringVar(&server, "server", defaultServer, "guildbook server URL")
	cmd.Flags().StringVarP(&pw, "password", "p", "", "guild or admin password")

	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Close the session and forget the saved login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.api.Logout(cmd.Context())
		},
	}
}

func (c *cli) guildsCmd() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "guilds",
		Short: "List or found guilds",
	}
	cmd.PersistentFlags().StringVar(&server, "server", defaultServer, "guildbook server URL")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the most recently updated guilds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			guilds, err := c.api.ListGuilds(cmd.Context(), server)
			if err != nil {
				return err
			}
			for _, g := range guilds {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", g.ID, g.GuildName, g.UpdatedAt.Format("2006-01-02 15:04"))
			}

			return nil
		},
	}

	var pw string
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Found a new guild",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := password(pw)
			if err != nil {
				return err
			}

			state, err := c.api.CreateGuild(cmd.Context(), server, args[0], secret)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), state)

			return nil
		},
	}
	create.Flags().StringVarP(&pw, "password", "p", "", "password of the new guild")

	cmd.AddCommand(list, create)

	return cmd
}

func (c *cli) stateCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show the guild state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := c.api.State(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), state)
			}
			printSummary(cmd.OutOrStdout(), state)

			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full state as JSON")

	return cmd
}

// moneyCmd builds deposit and withdraw, which share their arguments.
func (c *cli) moneyCmd(use, short, path string) *cobra.Command {
	var reason, member string

	cmd := &cobra.Command{
		Use:   use + " AMOUNT CURRENCY",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			res, err := c.api.Mutate(cmd.Context(), http.MethodPost, path, map[string]any{
				"amount":   amount,
				"currency": strings.ToUpper(args[1]),
				"reason":   reason,
				"memberId": member,
			})
			if err != nil {
				return err
			}

			return printMutation(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&reason, "reason", "r", "", "reason recorded in the log")
	cmd.Flags().StringVarP(&member, "member", "m", "", "member credited in the log")

	return cmd
}

func (c *cli) depositCmd() *cobra.Command {
	return c.moneyCmd("deposit", "Add coins to the guild wallet", "/finance/deposit")
}

func (c *cli) withdrawCmd() *cobra.Command {
	return c.moneyCmd("withdraw", "Take coins from the guild wallet", "/finance/withdraw")
}

func (c *cli) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert AMOUNT FROM TO",
		Short: "Exchange coins between currencies",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			res, err := c.api.Mutate(cmd.Context(), http.MethodPost, "/finance/convert", map[string]any{
				"amount": amount,
				"from":   strings.ToUpper(args[1]),
				"to":     strings.ToUpper(args[2]),
			})
			if err != nil {
				return err
			}

			return printMutation(cmd.OutOrStdout(), res)
		},
	}
}

func (c *cli) memberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage guild members",
	}

	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Enroll a member",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.api.Mutate(cmd.Context(), http.MethodPost, "/members", map[string]any{
				"name": strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			return printMutation(cmd.OutOrStdout(), res)
		},
	}

	remove := &cobra.Command{
		Use:   "remove MEMBER_ID",
		Short: "Remove a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.api.Mutate(cmd.Context(), http.MethodDelete, "/members/"+args[0], nil)
			if err != nil {
				return err
			}

			return printMutation(cmd.OutOrStdout(), res)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List members and their purses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := c.api.State(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range state.Members {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%g TS\n", m.ID, m.Name, m.Status, m.Wallet.TS)
			}

			return nil
		},
	}

	cmd.AddCommand(add, remove, list)

	return cmd
}

func (c *cli) calendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Move the in-game calendar",
	}

	advance := &cobra.Command{
		Use:   "advance DAYS",
		Short: "Advance (or rewind, with a negative number) the date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid number of days %q", args[0])
			}

			res, err := c.api.Mutate(cmd.Context(), http.MethodPost, "/calendar/advance", map[string]any{"days": days})
			if err != nil {
				return err
			}

			return printMutation(cmd.OutOrStdout(), res)
		},
	}

	set := &cobra.Command{
		Use:   "set DAY MONTH YEAR",
		Short: "Set the date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := make([]int, len(args))
			for i, a := range args {
				v, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("invalid date part %q", a)
				}
				parts[i] = v
			}

			res, err := c.api.Mutate(cmd.Context(), http.MethodPut, "/calendar/date", map[string]any{
				"day":   parts[0],
				"month": parts[1],
				"year":  parts[2],
			})
			if err != nil {
				return err
			}

			return printMutation(cmd.OutOrStdout(), res)
		},
	}

	cmd.AddCommand(advance, set)

	return cmd
}

// callCmd reaches any ledger route not covered by a dedicated command.
func (c *cli) callCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call METHOD PATH [JSON]",
		Short: "Run any ledger operation, e.g. call POST /bases '{\"name\":\"Torre\",\"porte\":\"Minima\",\"type\":\"Residencia\"}'",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body any
			if len(args) == 3 {
				if err := json.Unmarshal([]byte(args[2]), &body); err != nil {
					return fmt.Errorf("invalid JSON body: %w", err)
				}
			}

			path := args[1]
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}

			res, err := c.api.Mutate(cmd.Context(), strings.ToUpper(args[0]), path, body)
			if err != nil {
				return err
			}

			return printMutation(cmd.OutOrStdout(), res)
		},
	}
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	return v, nil
}
