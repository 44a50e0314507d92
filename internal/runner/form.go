package runner

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hbjs97/n/internal/pm"
)

// HuhSelector는 charmbracelet/huh 기반의 Selector 구현이다.
// runForm이 nil이면 form.Run을 사용한다.
type HuhSelector struct {
	runForm func(*huh.Form) error
}

var _ Selector = (*HuhSelector)(nil)

// SelectManager는 매니저 선택 UI를 표시한다.
func (h *HuhSelector) SelectManager(candidates []Candidate) (pm.Manager, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("runner.SelectManager: 선택 가능한 매니저가 없습니다")
	}

	selected := candidates[0].Manager
	options := make([]huh.Option[pm.Manager], len(candidates))
	for i, c := range candidates {
		options[i] = huh.NewOption(optionLabel(c), c.Manager)
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[pm.Manager]().
			Title("사용할 패키지 매니저를 선택하세요").
			Options(options...).
			Value(&selected),
	))
	run := h.runForm
	if run == nil {
		run = (*huh.Form).Run
	}
	if err := run(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", fmt.Errorf("runner.SelectManager: %w", ErrAborted)
		}
		return "", fmt.Errorf("runner.SelectManager: %w", err)
	}
	return selected, nil
}

func optionLabel(c Candidate) string {
	if !c.Installed {
		if c.Hint == "" {
			return fmt.Sprintf("%s (설치되지 않음)", c.Manager)
		}
		return fmt.Sprintf("%s (설치되지 않음, %s)", c.Manager, c.Hint)
	}
	if c.Version == "" {
		return c.Manager.String()
	}
	return fmt.Sprintf("%s (%s)", c.Manager, c.Version)
}
