package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/psdsmon/psdsmon/config"
	"github.com/psdsmon/psdsmon/internal/backend"
	"github.com/psdsmon/psdsmon/internal/docker"
	"github.com/psdsmon/psdsmon/internal/pager"
	"github.com/psdsmon/psdsmon/internal/process"
	"github.com/psdsmon/psdsmon/internal/shell"
	"github.com/psdsmon/psdsmon/internal/sysdunits"
	"github.com/psdsmon/psdsmon/internal/system"
	"github.com/psdsmon/psdsmon/internal/view"
)

// NewRootCmd builds the command tree. Running without a subcommand starts
// the interactive monitor; ps and ds print a single report and exit.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "psdsmon",
		Short:         "PS & DS System Monitor",
		Long:          "Cross-platform process and system status tool.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyFlagOverrides(cmd, cfg)
			factory, err := newFactory(cfg)
			if err != nil {
				return err
			}
			sh := shell.New(factory, os.Stdin, cmd.OutOrStdout(), cfg.PageSize, !cfg.NoColor)
			return sh.Run()
		},
	}

	root.PersistentFlags().Int("page-size", cfg.PageSize, "processes per page in the PS view")
	root.PersistentFlags().String("backend", cfg.Backend, "collection backend: auto, gopsutil, tasklist, procfs or ps")
	root.PersistentFlags().Bool("no-color", cfg.NoColor, "never clear the screen between pages")

	root.AddCommand(newPSCmd(cfg))
	root.AddCommand(newDSCmd(cfg))

	return root
}

func newPSCmd(cfg *config.Config) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "ps",
		Short: "Print the process table once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyFlagOverrides(cmd, cfg)
			factory, err := newFactory(cfg)
			if err != nil {
				return err
			}
			procs, _, _ := factory()

			list, err := procs.List()
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), list)
			}
			view.RenderProcessTable(cmd.OutOrStdout(), pager.New(list.Processes, list.Total))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of the table")
	return cmd
}

func newDSCmd(cfg *config.Config) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "ds",
		Short: "Print the detailed system report once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyFlagOverrides(cmd, cfg)
			factory, err := newFactory(cfg)
			if err != nil {
				return err
			}
			_, sys, _ := factory()

			snap := sys.Snapshot()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), snap)
			}
			view.RenderSystemReport(cmd.OutOrStdout(), snap)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of the report")
	return cmd
}

// applyFlagOverrides copies flag values over the environment-derived config,
// but only for flags actually set on the command line.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("page-size") {
		cfg.PageSize, _ = flags.GetInt("page-size")
	}
	if flags.Changed("backend") {
		cfg.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}
}

// newFactory resolves the backend override once, then returns the factory
// the shell re-runs on every refresh. Each call probes the host again and
// builds collectors from scratch.
func newFactory(cfg *config.Config) (shell.Factory, error) {
	override, err := backend.ParseKind(cfg.Backend)
	if err != nil {
		return nil, err
	}

	return func() (*process.Collector, *system.Collector, backend.Capabilities) {
		caps := backend.Probe()
		if override != "" {
			caps.Kind = override
		}
		if cfg.LogLevel == "debug" {
			log.Printf("probe: backend=%s docker_socket=%t dbus=%t",
				caps.Kind, caps.HasDockerSocket, caps.HasDBus)
		}
		b := backend.New(caps.Kind)

		var enrichers []system.Enricher
		if cfg.DockerEnabled && caps.HasDockerSocket {
			if d, err := docker.NewSummarizer(); err == nil {
				enrichers = append(enrichers, d)
			}
		}
		if cfg.ServicesEnabled && caps.HasDBus {
			if u, err := sysdunits.NewSummarizer(); err == nil {
				enrichers = append(enrichers, u)
			}
		}
		return process.NewCollector(b), system.NewCollector(b, enrichers...), caps
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
