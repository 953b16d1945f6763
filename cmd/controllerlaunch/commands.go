// cmd/controllerlaunch/commands.go
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tamzrod/controller-launch/internal/config"
	"github.com/tamzrod/controller-launch/internal/launch"
	"github.com/tamzrod/controller-launch/internal/render"
)

func (c *cli) spawnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spawn [controller...]",
		Short: "Spawn and activate controllers",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []launch.Option{
				launch.WithParamFiles(c.paramFiles...),
				launch.WithExtraArgs(c.extraArgs...),
			}
			if c.inactive {
				opts = append(opts, launch.WithInactive())
			}
			if c.activateAsGroup {
				opts = append(opts, launch.WithActivateAsGroup())
			}

			return c.emit(launch.BuildSpawnerFromList(args, opts...))
		},
	}

	c.controllerFlags(cmd)
	cmd.Flags().BoolVar(&c.inactive, "inactive", false, "configure controllers without activating them")
	cmd.Flags().BoolVar(&c.activateAsGroup, "activate-as-group", false, "activate all controllers together")
	return cmd
}

func (c *cli) loadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load [controller...]",
		Short: "Load controllers without activating them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.emit(launch.BuildLoadControllers(
				args,
				launch.WithParamFiles(c.paramFiles...),
				launch.WithExtraArgs(c.extraArgs...),
			))
		},
	}

	c.controllerFlags(cmd)
	return cmd
}

func (c *cli) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a launch file from a bundle config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadBundle()
			if err != nil {
				return err
			}

			// --------------------
			// Build sections
			// --------------------

			list := launch.BuildSpawnerFromList(cfg.Launch.Spawn, cfg.ListOptions()...)

			mapped, err := launch.BuildSpawnerFromMapping(cfg.Launch.Params, cfg.Options()...)
			if err != nil {
				return err
			}

			load := launch.BuildLoadControllers(cfg.Launch.Load, cfg.Options()...)

			d := launch.Merge(list, mapped, load)
			c.logger.Debug("launch description built",
				zap.Int("actions", d.Len()),
				zap.Strings("controllers", d.ControllerNames()))

			return c.emit(d)
		},
	}

	c.configFlag(cmd)
	return cmd
}

func (c *cli) validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a bundle config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.loadBundle(); err != nil {
				return err
			}
			c.logger.Info("config valid", zap.String("path", c.configPath))
			return nil
		},
	}

	c.configFlag(cmd)
	return cmd
}

func (c *cli) controllerFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&c.paramFiles, "param-file", nil, "parameter file (repeatable)")
	cmd.Flags().StringArrayVar(&c.extraArgs, "extra-arg", nil, "extra spawner argument (repeatable)")
}

func (c *cli) configFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.configPath, "config", "c", "", "bundle config (YAML)")
	_ = cmd.MarkFlagRequired("config")
}

// loadBundle runs the load, validate, normalize pipeline.
func (c *cli) loadBundle() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	config.Normalize(cfg)
	return cfg, nil
}

func (c *cli) emit(d launch.Description) error {
	if c.output == "" || c.output == "-" {
		return render.NewYAMLWriter(os.Stdout).Write(d)
	}

	if err := render.WriteFile(c.output, d, c.force); err != nil {
		return err
	}
	c.logger.Info("launch file written",
		zap.String("path", c.output),
		zap.Int("actions", d.Len()))
	return nil
}
