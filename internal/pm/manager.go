package pm

import (
	"errors"
	"fmt"
)

// ErrUnknownManager는 지원하지 않는 패키지 매니저 이름일 때 반환된다.
var ErrUnknownManager = errors.New("지원하지 않는 패키지 매니저")

// Manager는 JavaScript 패키지 매니저 식별자다.
type Manager string

const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
	Bun  Manager = "bun"
)

// detectOrder는 같은 디렉토리에 lock 파일이 여러 개일 때의 우선순위다.
var detectOrder = []Manager{NPM, Yarn, PNPM, Bun}

var lockFiles = map[Manager][]string{
	NPM:  {"package-lock.json", "npm-shrinkwrap.json"},
	Yarn: {"yarn.lock"},
	PNPM: {"pnpm-lock.yaml"},
	Bun:  {"bun.lockb", "bun.lock"},
}

// All은 감지 순서대로 모든 매니저를 반환한다.
func All() []Manager {
	out := make([]Manager, len(detectOrder))
	copy(out, detectOrder)
	return out
}

// Candidates는 lock 파일이 없을 때 사용자에게 제시하는 선택지다.
func Candidates() []Manager {
	return []Manager{PNPM, Bun, NPM, Yarn}
}

// Parse는 이름을 Manager로 변환한다.
func Parse(name string) (Manager, error) {
	m := Manager(name)
	if _, ok := lockFiles[m]; !ok {
		return "", fmt.Errorf("pm.Parse: %w: %q", ErrUnknownManager, name)
	}
	return m, nil
}

// Executable은 실행 파일 이름을 반환한다.
func (m Manager) Executable() string {
	return string(m)
}

// LockFiles는 이 매니저를 감지하는 lock 파일 이름 목록이다.
func (m Manager) LockFiles() []string {
	return lockFiles[m]
}

// InstallArgs는 인자 없는 의존성 설치 명령이다.
func (m Manager) InstallArgs() []string {
	return []string{"install"}
}

func (m Manager) String() string {
	return string(m)
}
