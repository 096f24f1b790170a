package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"admanager/internal/core/domain"
	"admanager/internal/core/port"
)

// entityOps adapts one entity of the console use case to the generic
// list/get/delete commands.
type entityOps struct {
	kind   domain.Kind
	list   func(ctx context.Context, uc port.ConsoleUseCase, parentID string) (any, error)
	get    func(ctx context.Context, uc port.ConsoleUseCase, id string) (any, error)
	remove func(uc port.ConsoleUseCase, ctx context.Context, id string) error
	create *cobra.Command
}

func entityCmds() []*cobra.Command {
	ops := []entityOps{
		{
			kind: domain.KindClient,
			list: func(ctx context.Context, uc port.ConsoleUseCase, _ string) (any, error) {
				return uc.ListClients(ctx)
			},
			get: func(ctx context.Context, uc port.ConsoleUseCase, id string) (any, error) {
				return uc.GetClient(ctx, id)
			},
			remove: port.ConsoleUseCase.DeleteClient,
			create: clientCreateCmd(),
		},
		{
			kind: domain.KindProject,
			list: func(ctx context.Context, uc port.ConsoleUseCase, parentID string) (any, error) {
				return uc.ListProjects(ctx, parentID)
			},
			get: func(ctx context.Context, uc port.ConsoleUseCase, id string) (any, error) {
				return uc.GetProject(ctx, id)
			},
			remove: port.ConsoleUseCase.DeleteProject,
			create: projectCreateCmd(),
		},
		{
			kind: domain.KindCampaign,
			list: func(ctx context.Context, uc port.ConsoleUseCase, parentID string) (any, error) {
				return uc.ListCampaigns(ctx, parentID)
			},
			get: func(ctx context.Context, uc port.ConsoleUseCase, id string) (any, error) {
				return uc.GetCampaign(ctx, id)
			},
			remove: port.ConsoleUseCase.DeleteCampaign,
			create: campaignCreateCmd(),
		},
		{
			kind: domain.KindAdSet,
			list: func(ctx context.Context, uc port.ConsoleUseCase, parentID string) (any, error) {
				return uc.ListAdSets(ctx, parentID)
			},
			get: func(ctx context.Context, uc port.ConsoleUseCase, id string) (any, error) {
				return uc.GetAdSet(ctx, id)
			},
			remove: port.ConsoleUseCase.DeleteAdSet,
		},
		{
			kind: domain.KindAd,
			list: func(ctx context.Context, uc port.ConsoleUseCase, parentID string) (any, error) {
				return uc.ListAds(ctx, parentID)
			},
			get: func(ctx context.Context, uc port.ConsoleUseCase, id string) (any, error) {
				return uc.GetAd(ctx, id)
			},
			remove: port.ConsoleUseCase.DeleteAd,
		},
	}
	cmds := make([]*cobra.Command, 0, len(ops))
	for _, op := range ops {
		cmds = append(cmds, entityCmd(op))
	}
	return cmds
}

func entityCmd(op entityOps) *cobra.Command {
	name := string(op.kind)
	root := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("List, show and delete %s records", name),
	}

	var parentID string
	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s records", name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				v, err := op.list(cmd.Context(), a.console, parentID)
				if err != nil {
					return err
				}
				return printJSON(cmd, v)
			})
		},
	}
	if p := op.kind.Parent(); p != "" {
		list.Flags().StringVar(&parentID, string(p), "", fmt.Sprintf("only records under this %s id", p))
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: fmt.Sprintf("Show one %s", name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				v, err := op.get(cmd.Context(), a.console, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd, v)
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete one %s; children are kept", name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				return op.remove(a.console, cmd.Context(), args[0])
			})
		},
	}

	root.AddCommand(list, get, del)
	if op.create != nil {
		root.AddCommand(op.create)
	}
	return root
}

func clientCreateCmd() *cobra.Command {
	var in port.ClientInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				cl, err := a.console.CreateClient(cmd.Context(), in)
				if err != nil {
					return err
				}
				return printJSON(cmd, cl)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ClientName, "name", "", "client name")
	f.StringVar(&in.IndustryCategory, "industry", "", "industry category")
	f.StringVar(&in.ContactPerson, "contact", "", "contact person")
	f.StringVar(&in.Email, "email", "", "contact email")
	f.StringVar(&in.Phone, "phone", "", "contact phone")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func projectCreateCmd() *cobra.Command {
	var (
		in         port.ProjectInput
		status     string
		start, end string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project under a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			in.Status = domain.Status(status)
			if in.StartDate, err = parseDate(start); err != nil {
				return err
			}
			if in.EndDate, err = parseDate(end); err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app) error {
				pr, err := a.console.CreateProject(cmd.Context(), in)
				if err != nil {
					return err
				}
				return printJSON(cmd, pr)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ClientID, "client", "", "parent client id")
	f.StringVar(&in.ProjectName, "name", "", "project name")
	f.StringVar(&in.Description, "description", "", "free text description")
	f.StringVar(&status, "status", "", "ACTIVE, PAUSED, SCHEDULED or COMPLETED")
	f.StringVar(&start, "start", "", "start date, YYYY-MM-DD")
	f.StringVar(&end, "end", "", "end date, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func campaignCreateCmd() *cobra.Command {
	var (
		in                            port.CampaignInput
		objective, status, budgetType string
		amount                        string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a campaign under a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Objective = domain.Objective(objective)
			in.Status = domain.Status(status)
			in.BudgetType = domain.BudgetType(budgetType)
			if in.BudgetType == domain.BudgetLifetime {
				in.LifetimeBudget = amount
			} else {
				in.DailyBudget = amount
			}
			return withApp(cmd.Context(), func(a *app) error {
				ca, err := a.console.CreateCampaign(cmd.Context(), in)
				if err != nil {
					return err
				}
				return printJSON(cmd, ca)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ProjectID, "project", "", "parent project id")
	f.StringVar(&in.CampaignName, "name", "", "campaign name")
	f.StringVar(&objective, "objective", "", "AWARENESS, CONSIDERATION, CONVERSIONS or SALES")
	f.StringVar(&status, "status", "", "ACTIVE, PAUSED or SCHEDULED")
	f.StringVar(&budgetType, "budget-type", string(domain.BudgetDaily), "daily or lifetime")
	f.StringVar(&amount, "budget", "", "budget amount")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("budget")
	return cmd
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return &t, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
