package runner

import (
	"errors"

	"github.com/hbjs97/n/internal/pm"
)

// ErrAborted는 사용자가 매니저 선택 프롬프트를 취소했을 때 반환된다.
var ErrAborted = errors.New("패키지 매니저 선택이 취소되었습니다")

// Candidate는 선택 프롬프트에 표시되는 매니저 하나다.
type Candidate struct {
	Manager pm.Manager
	// Version은 설치된 경우 `<manager> --version` 출력이다.
	Version   string
	Installed bool
	// Hint는 설치되지 않은 경우의 설치 안내다.
	Hint string
}

// Selector는 패키지 매니저 선택 UI를 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type Selector interface {
	// SelectManager는 candidates 중 하나를 선택할 때까지 블록한다.
	// 취소되면 ErrAborted를 감싼 에러를 반환한다.
	SelectManager(candidates []Candidate) (pm.Manager, error)
}
