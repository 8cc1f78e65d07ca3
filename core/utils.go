package core

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// ClosestMatches returns at most n candidates whose similarity ratio with word is >= cutoff,
// best matches first. Ties keep the candidates' original order.
func ClosestMatches(word string, candidates []string, n int, cutoff float64) []string {
	if n <= 0 || word == "" {
		return nil
	}

	type scored struct {
		value string
		ratio float64
	}
	seen := make(map[string]bool, len(candidates))
	matches := make([]scored, 0, len(candidates))
	lword := strings.Split(strings.ToLower(word), "")
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true

		m := difflib.NewMatcher(lword, strings.Split(strings.ToLower(c), ""))
		// cheap upper bounds first
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		if r := m.Ratio(); r >= cutoff {
			matches = append(matches, scored{value: c, ratio: r})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].ratio > matches[j].ratio })

	if len(matches) > n {
		matches = matches[:n]
	}
	res := make([]string, 0, len(matches))
	for _, m := range matches {
		res = append(res, m.value)
	}
	return res
}

// Getwd tries to find the project root (the directory holding go.mod).
// go-test changes the working directory to the test package being run during tests,
// so we walk up until we find it and fall back to the current directory.
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	currDir := wd
	for {
		if fi, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil && !fi.IsDir() {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}
