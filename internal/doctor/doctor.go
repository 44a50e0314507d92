package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbjs97/n/internal/cmdexec"
	"github.com/hbjs97/n/internal/pm"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Manager pm.Manager
	Status  Status
	Message string
	Fix     string
}

var installHints = map[pm.Manager]string{
	pm.NPM:  "https://nodejs.org/",
	pm.Yarn: "npm install -g yarn",
	pm.PNPM: "npm install -g pnpm",
	pm.Bun:  "https://bun.sh/",
}

// CheckManager는 패키지 매니저 실행 파일의 존재 여부와 버전을 확인한다.
func CheckManager(ctx context.Context, cmd cmdexec.Commander, m pm.Manager) DiagResult {
	out, err := cmd.Run(ctx, m.Executable(), "--version")
	if err != nil {
		return DiagResult{
			Manager: m,
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 없음", m),
			Fix:     fmt.Sprintf("설치: %s", installHints[m]),
		}
	}
	return DiagResult{
		Manager: m,
		Status:  StatusOK,
		Message: firstLine(string(out)),
	}
}

// CheckManagers는 주어진 순서대로 모든 매니저를 확인한다.
func CheckManagers(ctx context.Context, cmd cmdexec.Commander, managers []pm.Manager) []DiagResult {
	results := make([]DiagResult, 0, len(managers))
	for _, m := range managers {
		results = append(results, CheckManager(ctx, cmd, m))
	}
	return results
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
