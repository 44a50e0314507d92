package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hbjs97/n/internal/cmdexec"
	"github.com/hbjs97/n/internal/config"
	"github.com/hbjs97/n/internal/runner"
	"github.com/spf13/cobra"
)

// App은 n CLI의 의존성 컨테이너다.
type App struct {
	Commander cmdexec.Commander
	Selector  runner.Selector
	CfgPath   string
	// Dir은 감지 시작 디렉토리다. 비어있으면 현재 작업 디렉토리.
	Dir string
	// Stderr는 안내 메시지와 로그 출력 대상이다. 비어있으면 os.Stderr.
	Stderr io.Writer
}

// NewApp은 실제 명령 실행기와 huh 프롬프트를 사용하는 App을 생성한다.
func NewApp() *App {
	return &App{
		Commander: &cmdexec.RealCommander{},
		Selector:  &runner.HuhSelector{},
		CfgPath:   config.DefaultPath(),
	}
}

// NewRootCmd는 n CLI의 루트 명령을 생성한다.
// 플래그 파싱을 끄고 모든 인자를 패키지 매니저에 그대로 전달한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "n [args...]",
		Short:              "lock 파일로 패키지 매니저를 감지하여 명령을 전달한다",
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(a.stderr(), logLevel())
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args)
		},
	}
	return cmd
}

func (a *App) run(ctx context.Context, args []string) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	dir := a.Dir
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("cli.run: %w", err)
		}
	}
	logger.Debug("시작", "dir", dir, "config", a.CfgPath, "args", args)

	r := &runner.Runner{
		Commander: a.Commander,
		Selector:  a.Selector,
		Config:    cfg,
		Logger:    logger,
		Stderr:    a.stderr(),
	}
	return r.Run(ctx, dir, args)
}

func (a *App) stderr() io.Writer {
	if a.Stderr == nil {
		return os.Stderr
	}
	return a.Stderr
}

// logLevel은 N_DEBUG가 설정되면 debug, 아니면 warn 레벨을 반환한다.
func logLevel() log.Level {
	if os.Getenv(EnvDebug) != "" {
		return log.DebugLevel
	}
	return log.WarnLevel
}
