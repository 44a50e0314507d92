package runner

import "regexp"

var tokenPrefixes = []string{"npm_", "ghp_", "gho_", "github_pat_", "ghs_", "ghu_"}

var tokenPattern = regexp.MustCompile(`(npm_|ghp_|gho_|github_pat_|ghs_|ghu_)[A-Za-z0-9_]+`)

// MaskTokens는 npm/GitHub 레지스트리 토큰 패턴을 마스킹한다.
func MaskTokens(s string) string {
	return tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		for _, prefix := range tokenPrefixes {
			if len(match) >= len(prefix) && match[:len(prefix)] == prefix {
				return prefix + "****"
			}
		}
		return match
	})
}
