// Package runner resolves which package manager to drive and forwards the
// user's command to it, falling back to an interactive choice plus an install
// step when no lock file is found.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hbjs97/n/internal/cmdexec"
	"github.com/hbjs97/n/internal/config"
	"github.com/hbjs97/n/internal/doctor"
	"github.com/hbjs97/n/internal/pm"
)

var echoStyle = lipgloss.NewStyle().Faint(true)

// Runner는 감지 → 확장 → 실행 파이프라인이다.
type Runner struct {
	Commander cmdexec.Commander
	Selector  Selector
	Config    *config.Config
	Logger    *log.Logger
	Stderr    io.Writer
}

// Run은 dir 기준으로 매니저를 결정하고 args를 실행한다.
func (r *Runner) Run(ctx context.Context, dir string, args []string) error {
	if d, ok := pm.Detect(dir); ok {
		r.logger().Debug("lock 파일 감지", "manager", d.Manager, "lockfile", d.LockFile)
		return r.exec(ctx, d.Manager, pm.Expand(d.Manager, args))
	}

	fmt.Fprintln(r.stderr(), "No package manager detected.")

	m, err := r.choose(ctx)
	if err != nil {
		return err
	}
	return r.runResolved(ctx, m, args)
}

// choose는 default_manager 또는 사용자 선택으로 매니저를 결정한다.
func (r *Runner) choose(ctx context.Context) (pm.Manager, error) {
	if m, ok := r.config().Manager(); ok {
		r.logger().Debug("default_manager 사용", "manager", m)
		return m, nil
	}

	results := doctor.CheckManagers(ctx, r.Commander, pm.Candidates())
	candidates := make([]Candidate, len(results))
	for i, res := range results {
		candidates[i] = Candidate{
			Manager:   res.Manager,
			Installed: res.Status == doctor.StatusOK,
		}
		if candidates[i].Installed {
			candidates[i].Version = res.Message
		} else {
			candidates[i].Hint = res.Fix
		}
	}

	m, err := r.Selector.SelectManager(candidates)
	if err != nil {
		return "", fmt.Errorf("runner.Run: %w", err)
	}
	r.logger().Debug("매니저 선택됨", "manager", m)
	return m, nil
}

// runResolved는 선택된 매니저로 필요 시 install을 먼저 실행한 뒤 원래 명령을 실행한다.
// install이 실패하면 원래 명령은 실행하지 않는다.
func (r *Runner) runResolved(ctx context.Context, m pm.Manager, args []string) error {
	expanded := pm.Expand(m, args)
	if len(expanded) == 0 {
		return r.exec(ctx, m, m.InstallArgs())
	}
	if pm.IsInstall(expanded[0]) {
		return r.exec(ctx, m, expanded)
	}
	if err := r.exec(ctx, m, m.InstallArgs()); err != nil {
		return err
	}
	return r.exec(ctx, m, expanded)
}

func (r *Runner) exec(ctx context.Context, m pm.Manager, args []string) error {
	cfg := r.config()
	line := MaskTokens(strings.Join(append([]string{m.Executable()}, args...), " "))
	if cfg.IsEcho() {
		fmt.Fprintln(r.stderr(), echoStyle.Render("$ "+line))
	}
	r.logger().Debug("실행", "cmd", line)

	if err := r.Commander.Exec(ctx, cfg.Env, m.Executable(), args...); err != nil {
		return fmt.Errorf("runner.exec: %w", err)
	}
	return nil
}

func (r *Runner) config() *config.Config {
	if r.Config == nil {
		return config.Default()
	}
	return r.Config
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}
