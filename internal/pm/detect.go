package pm

import (
	"os"
	"path/filepath"
)

// MaxAncestors는 시작 디렉토리 위로 탐색하는 상위 디렉토리 수다.
const MaxAncestors = 5

// Detection은 lock 파일 감지 결과다.
type Detection struct {
	Manager  Manager
	LockFile string
}

// Detect는 startDir과 최대 MaxAncestors개의 상위 디렉토리에서 lock 파일을 찾는다.
// 가까운 디렉토리가 우선이며, 같은 디렉토리 안에서는 detectOrder 순서를 따른다.
func Detect(startDir string) (Detection, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		dir = filepath.Clean(startDir)
	}

	for i := 0; i <= MaxAncestors; i++ {
		if d, ok := detectIn(dir); ok {
			return d, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return Detection{}, false
}

func detectIn(dir string) (Detection, bool) {
	for _, m := range detectOrder {
		for _, name := range m.LockFiles() {
			path := filepath.Join(dir, name)
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			return Detection{Manager: m, LockFile: path}, true
		}
	}
	return Detection{}, false
}
