package cli

import (
	"errors"
)

// ExitCode는 n의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 5
	// ExitNotFound는 패키지 매니저 실행 파일을 찾지 못한 경우다.
	ExitNotFound ExitCode = 127
	// ExitAborted는 매니저 선택 프롬프트 취소다.
	ExitAborted ExitCode = 130
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
// 자식 프로세스가 실패한 경우 그 종료 코드를 그대로 전달한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		return ExitCode(exitErr.Code)
	case errors.Is(err, ErrAborted):
		return ExitAborted
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
