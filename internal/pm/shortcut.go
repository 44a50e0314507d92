package pm

import "slices"

// expansion은 하나의 단축 토큰이 펼쳐지는 방식이다.
// perManager에 항목이 없으면 def를 사용한다.
type expansion struct {
	def        []string
	perManager map[Manager][]string
}

var shortcuts = map[string]expansion{
	"i": {def: []string{"install"}},
	"a": {
		def:        []string{"add"},
		perManager: map[Manager][]string{NPM: {"install"}},
	},
	"d": {
		def:        []string{"run", "dev"},
		perManager: map[Manager][]string{Yarn: {"dev"}},
	},
	"b": {
		def:        []string{"run", "build"},
		perManager: map[Manager][]string{Yarn: {"build"}},
	},
	"s": {
		def:        []string{"start"},
		perManager: map[Manager][]string{Bun: {"run", "start"}},
	},
	// bun test는 내장 테스트 러너라서 스크립트를 거치도록 run을 붙인다.
	"t": {
		def:        []string{"test"},
		perManager: map[Manager][]string{Bun: {"run", "test"}},
	},
	"r": {def: []string{"run"}},
	"rm": {
		def:        []string{"remove"},
		perManager: map[Manager][]string{NPM: {"uninstall"}},
	},
	"u": {
		def:        []string{"update"},
		perManager: map[Manager][]string{Yarn: {"upgrade"}},
	},
	"x": {
		def: []string{"dlx"},
		perManager: map[Manager][]string{
			NPM: {"exec"},
			Bun: {"x"},
		},
	},
}

var installFamily = map[string]bool{
	"install": true,
	"add":     true,
	"i":       true,
	"a":       true,
	"ci":      true,
}

// Shortcuts는 등록된 단축 토큰 목록을 반환한다.
func Shortcuts() []string {
	out := make([]string, 0, len(shortcuts))
	for tok := range shortcuts {
		out = append(out, tok)
	}
	return out
}

// Expansion은 m에서 tok이 펼쳐지는 토큰 목록을 반환한다.
// 반환된 슬라이스는 호출자 소유다. tok이 단축 토큰이 아니면 false를 반환한다.
func Expansion(m Manager, tok string) ([]string, bool) {
	e, ok := shortcuts[tok]
	if !ok {
		return nil, false
	}
	if v, ok := e.perManager[m]; ok {
		return slices.Clone(v), true
	}
	return slices.Clone(e.def), true
}

// Expand는 첫 번째 토큰만 단축 테이블로 펼치고 나머지는 그대로 붙인다.
// 알 수 없는 토큰은 매니저에 그대로 전달된다.
func Expand(m Manager, args []string) []string {
	if len(args) == 0 {
		return []string{}
	}
	head, ok := Expansion(m, args[0])
	if !ok {
		head = args[:1]
	}
	out := make([]string, 0, len(head)+len(args)-1)
	out = append(out, head...)
	return append(out, args[1:]...)
}

// IsInstall은 tok이 의존성을 설치하는 명령인지 판정한다.
func IsInstall(tok string) bool {
	return installFamily[tok]
}
