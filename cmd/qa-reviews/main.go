package main

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/ryo246912/bb-qa-reviews/internal/bitbucket"
	"github.com/ryo246912/bb-qa-reviews/internal/config"
	"github.com/ryo246912/bb-qa-reviews/internal/jira"
	"github.com/ryo246912/bb-qa-reviews/internal/logging"
	"github.com/ryo246912/bb-qa-reviews/internal/report"
	"github.com/ryo246912/bb-qa-reviews/internal/service"
	"github.com/ryo246912/bb-qa-reviews/internal/ui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds command line options; everything else comes from the environment
type Flags struct {
	Output  string
	Force   bool
	EnvFile string
}

func (f *Flags) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Output, "output", "o", f.Output, "report path (overrides REPORT_FILE)")
	fs.BoolVarP(&f.Force, "force", "f", f.Force, "overwrite an existing report without asking")
	fs.StringVar(&f.EnvFile, "env-file", f.EnvFile, "env file to load (default .env if present)")
}

func runCommand(ctx context.Context, f *Flags, stdout io.Writer, prompter ui.Prompter, interactive bool) error {
	cfg, err := config.Load(f.EnvFile)
	if err != nil {
		return err
	}

	out, err := logging.Setup(log.StandardLogger(), os.Stderr, logging.Options{Debug: cfg.Debug, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer out.Close()

	client, err := bitbucket.NewClient(bitbucket.Options{
		BaseURL:   cfg.Bitbucket.APIURL,
		Email:     cfg.Bitbucket.Email,
		APIToken:  cfg.Bitbucket.APIToken,
		Workspace: cfg.Bitbucket.Workspace,
		Log:       out.Trace,
	})
	if err != nil {
		return errors.WithMessage(err, "couldn't create Bitbucket client")
	}

	var fetcher jira.IssueFetcher
	if cfg.JiraEnabled() {
		jiraClient, err := jira.NewClient(jira.Options{
			BaseURL:  cfg.Jira.BaseURL,
			Email:    cfg.Jira.Email,
			APIToken: cfg.Jira.APIToken,
		})
		if err != nil {
			return errors.WithMessage(err, "couldn't create Jira client")
		}
		fetcher = jiraClient
	} else {
		log.Info("Jira settings not provided, issue types will be left empty")
	}

	auditor := service.NewAuditor(client, jira.NewTypeResolver(fetcher), cfg.RepositoryList())
	auditor.SetOutput(stdout)
	records, err := auditor.Run(ctx)
	if err != nil {
		return err
	}

	path := cfg.ReportFile
	if f.Output != "" {
		path = f.Output
	}

	if len(records) > 0 {
		ok, err := ui.ShouldWrite(path, f.Force, interactive, prompter)
		if err != nil {
			return err
		}
		if !ok {
			log.Warnf("Report not written, %s left unchanged", path)
			return nil
		}
		if err := report.WriteFile(path, records); err != nil {
			return errors.WithMessage(err, "couldn't write report")
		}
	}

	ui.PrintSummary(stdout, records, path)
	return nil
}

func main() {
	f := &Flags{}

	cmd := &cobra.Command{
		Use:   "qa-reviews",
		Short: "Report merged pull requests you approved and acknowledged with a QA comment",
		Long: `qa-reviews scans Bitbucket repositories for merged pull requests that the
authenticated user approved and commented on with "QA" or "DEV QA", optionally
looks up the Jira issue type for each one, and writes a CSV report.

Environment:
` + config.Description(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd.Context(), f, cmd.OutOrStdout(), &ui.DefaultPrompter{}, ui.Interactive())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	f.BindFlags(cmd.Flags())

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Error("qa-reviews failed")
		os.Exit(1)
	}
}
