// Package relpath computes where one absolute slash-separated path lies
// relative to another.
package relpath

import "strings"

func dirEnd(p string, i int) bool {
	return i == len(p) || p[i] == '/'
}

// Resolve returns the part of dest that differs from from, and the number of
// ".." steps needed to climb out of from before rest applies.
//
// Both paths must be absolute. Repeated separators are ignored. Identical
// paths give ("", 0); a dest nested inside from gives the nested suffix and no
// dotdots.
func Resolve(from, dest string) (rest string, dotdots int) {
	i, j := 0, 0
	start := 0
	for {
		for i < len(from) && from[i] == '/' {
			i++
		}
		for j < len(dest) && dest[j] == '/' {
			j++
		}
		start = j
		if i == len(from) {
			break
		}

		for !dirEnd(from, i) && j < len(dest) && from[i] == dest[j] {
			i++
			j++
		}
		if dirEnd(from, i) && dirEnd(dest, j) {
			continue
		}

		// every element left in from costs one ".."
		for {
			dotdots++
			for !dirEnd(from, i) {
				i++
			}
			for i < len(from) && from[i] == '/' {
				i++
			}
			if i == len(from) {
				break
			}
		}
		break
	}
	return dest[start:], dotdots
}

// Join returns dest expressed as a relative path from from, e.g. "../../x".
// Identical paths give ".".
func Join(from, dest string) string {
	rest, dotdots := Resolve(from, dest)
	rel := strings.Repeat("../", dotdots) + rest
	rel = strings.TrimSuffix(rel, "/")
	if rel == "" {
		return "."
	}
	return rel
}
