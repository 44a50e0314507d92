package cli

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/charmbracelet/lipgloss"
	"github.com/hbjs97/n/internal/cmdexec"
	"github.com/hbjs97/n/internal/config"
	"github.com/hbjs97/n/internal/runner"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrAborted는 매니저 선택 프롬프트가 취소되었을 때의 sentinel error다.
	ErrAborted = runner.ErrAborted
	// ErrNotFound는 실행 파일이 PATH에 없을 때의 sentinel error다.
	ErrNotFound = exec.ErrNotFound
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)

// ExitError는 자식 프로세스의 0이 아닌 종료다.
type ExitError = cmdexec.ExitError

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// ReportError는 err를 w에 출력한다.
// 자식 프로세스의 실패는 자식이 이미 출력했으므로 출력하지 않는다.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fmt.Fprintln(w, errorStyle.Render("n: "+err.Error()))
}
