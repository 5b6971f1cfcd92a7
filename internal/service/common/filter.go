package common

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// PatternSet はドメイン名に対するglobパターンの集合
// ワイルドカードを含まないパターンは完全一致として振る舞う
type PatternSet struct {
	patterns []string
	globs    []glob.Glob
}

// CompilePatterns はパターン文字列の集合をコンパイルする
// ドメイン名として扱うため "." を区切り文字とし、"*" は1ラベルにのみマッチする
func CompilePatterns(patterns []string) (PatternSet, error) {
	set := PatternSet{}
	for _, p := range patterns {
		normalized := strings.ToLower(p)
		g, err := glob.Compile(normalized, '.')
		if err != nil {
			return PatternSet{}, fmt.Errorf("パターン '%s' が不正です: %w", p, err)
		}
		set.patterns = append(set.patterns, normalized)
		set.globs = append(set.globs, g)
	}
	return set, nil
}

// MatchPattern は名前がいずれかのパターンにマッチするかを判定する
func (s PatternSet) MatchPattern(name string) bool {
	name = strings.ToLower(name)
	for _, g := range s.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// MatchAny は名前の集合のいずれかがパターンにマッチするかを判定する
func (s PatternSet) MatchAny(names []string) bool {
	for _, name := range names {
		if s.MatchPattern(name) {
			return true
		}
	}
	return false
}

// Patterns は正規化済みのパターン一覧を返す
func (s PatternSet) Patterns() []string {
	return s.patterns
}

// Len はパターン数を返す
func (s PatternSet) Len() int {
	return len(s.globs)
}

// SplitList はカンマ区切りの文字列を分割し、空要素を除いて返す
func SplitList(value string) []string {
	var items []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
