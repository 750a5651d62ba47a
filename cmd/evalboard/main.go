// main.go — evalboard entrypoint. The bare command starts the interactive
// workbench; subcommands expose report analysis and export for scripting.
// Logs go to a file because the terminal belongs to the interface.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"evalboard/cmd/evalboard/ui"
	"evalboard/internal/analyze"
	"evalboard/internal/config"
	"evalboard/internal/domain"
	"evalboard/internal/export"
	"evalboard/internal/probe"
	"evalboard/internal/store"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// cli carries the state shared by every command: flags, settings resolved
// from the settings root, and the file-backed logger.
type cli struct {
	settingsRoot string
	apiKey       string
	verbose      bool

	settings *config.Settings
	log      *zap.Logger
}

// credential resolves the Gemini API key: the flag wins over the environment.
func (c *cli) credential() string {
	if c.apiKey != "" {
		return c.apiKey
	}
	return config.APIKey()
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "evalboard",
		Short: "AI 模型测评工作台",
		Long:  "evalboard 管理测评对象、策略、题库与报告，并在终端内提供完整的测评工作台。",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(c.settingsRoot)
			if err != nil {
				return err
			}
			c.settings = settings
			level := settings.LogLevel()
			if c.verbose {
				level = "debug"
			}
			log, err := newFileLogger(settings.LogPath(), level)
			if err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			c.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWorkbench(cmd.Context())
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&c.settingsRoot, "settings", ".", "配置根目录（.evalboard/settings.yaml 所在位置）")
	root.PersistentFlags().StringVar(&c.apiKey, "api-key", "", "Gemini API 密钥，覆盖 GEMINI_API_KEY 环境变量")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "输出 debug 级别日志")

	root.AddCommand(newSummarizeCmd(c))
	root.AddCommand(newExportCmd(c))
	root.AddCommand(newVersionCmd())
	return root
}

// newFileLogger builds a JSON logger writing to path. Unknown level names
// fall back to info.
func newFileLogger(path, level string) (*zap.Logger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func (c *cli) runWorkbench(ctx context.Context) error {
	s, err := store.Seeded()
	if err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}
	analyzer := analyze.New(ctx, c.credential(), c.log)
	c.log.Info("workbench starting",
		zap.String("version", version),
		zap.Bool("analysis_available", analyzer.Available()))

	app := ui.NewApp(s, analyzer, probe.NewSimulated(), c.settings.LogoPath(), c.log)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run workbench: %w", err)
	}
	return nil
}

func newSummarizeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <report-id>",
		Short: "生成指定报告的 AI 分析并输出到标准输出",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Seeded()
			if err != nil {
				return err
			}
			r, ok := s.Reports.ByID(args[0])
			if !ok {
				return fmt.Errorf("report %q not found", args[0])
			}
			analyzer := analyze.New(cmd.Context(), c.credential(), c.log)
			fmt.Fprintln(cmd.OutOrStdout(), analyzer.Summarize(cmd.Context(), r))
			return nil
		},
	}
}

func newExportCmd(c *cli) *cobra.Command {
	var outputDir string
	cmd := &cobra.Command{
		Use:   "export <report-id>",
		Short: "导出报告资料包（Markdown、YAML 与校验清单）",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Seeded()
			if err != nil {
				return err
			}
			r, ok := s.Reports.ByID(args[0])
			if !ok {
				return fmt.Errorf("report %q not found", args[0])
			}
			bundle, err := export.GenerateBundle(r, taskForReport(s, r.TaskID), time.Now())
			if err != nil {
				return err
			}
			if err := export.WriteBundle(bundle, outputDir); err != nil {
				return err
			}
			c.log.Info("report exported",
				zap.String("report_id", r.ID),
				zap.String("output_dir", outputDir))
			for _, p := range bundle.Paths() {
				fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(outputDir, p))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "导出目录")
	return cmd
}

// taskForReport resolves a report's task binding. TaskID may dangle; the
// bundle simply omits the task section then.
func taskForReport(s *store.Store, taskID string) *domain.EvaluationTask {
	if t, ok := s.Tasks.ByID(taskID); ok {
		return &t
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "输出版本号",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "evalboard", version)
		},
	}
}
