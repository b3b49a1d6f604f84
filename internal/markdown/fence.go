package markdown

import "strings"

// fenceChar is the fence delimiter character.
const fenceChar = '`'

// minFenceLen is the shortest fence markdown recognizes.
const minFenceLen = 3

// Fence returns the shortest backtick fence that cannot be confused with any
// backtick run inside content. The fence is one longer than the longest run
// found, with a floor of three, so the delimiter never appears verbatim in
// the fenced block.
func Fence(content string) string {
	maxRun := 0
	currentRun := 0
	for _, char := range content {
		if char == fenceChar {
			currentRun++
			if currentRun > maxRun {
				maxRun = currentRun
			}
		} else {
			currentRun = 0
		}
	}
	length := maxRun + 1
	if length < minFenceLen {
		length = minFenceLen
	}
	return strings.Repeat(string(fenceChar), length)
}
