package runner

import (
	"testing"

	"github.com/hbjs97/n/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMaskTokens(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"npm token", "npm publish --//registry.npmjs.org/:_authToken=npm_abc123XYZ", "npm publish --//registry.npmjs.org/:_authToken=npm_****"},
		{"ghp token", "token: ghp_abc123def456ghi789", "token: ghp_****"},
		{"github_pat", "github_pat_abcdef1234567890", "github_pat_****"},
		{"no token", "pnpm run build", "pnpm run build"},
		{"multiple tokens", "npm_aaa and gho_bbb", "npm_**** and gho_****"},
		{"empty string", "", ""},
		{"prefix only at boundary", "npm_ next", "npm_ next"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskTokens(tt.input))
		})
	}
}

func TestRun_EchoMasksTokens(t *testing.T) {
	t.Parallel()
	dir := projectWithLock(t, "package-lock.json")
	fc := testutil.NewSucceedingCommander()
	r, stderr := newTestRunner(fc, &mockSelector{}, nil)

	err := r.Run(t.Context(), dir, []string{"publish", "--//registry.npmjs.org/:_authToken=npm_secretvalue"})
	assert.NoError(t, err)
	assert.Contains(t, stderr.String(), "npm_****")
	assert.NotContains(t, stderr.String(), "secretvalue")
	// 실제 인자는 마스킹되지 않는다.
	assert.Contains(t, fc.Execs[0], "npm_secretvalue")
}
