package markdown

import "strings"

// BlockState classifies a line's membership in a multi-line fenced block.
// Exactly one of IsStart/IsEnd is set for a fence line; interior lines have
// InBlock set with both flags false.
type BlockState struct {
	InBlock bool
	IsStart bool
	IsEnd   bool
}

// Boundary reports whether the line opens or closes a block.
func (s BlockState) Boundary() bool {
	return s.IsStart || s.IsEnd
}

// isCodeFence reports whether a line is a code fence marker (trimmed text
// starting with three backticks).
func isCodeFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

// isMathFence reports whether a line is a math fence marker (trimmed text
// exactly "$$").
func isMathFence(line string) bool {
	return strings.TrimSpace(line) == "$$"
}

// codeBlockState determines whether the line at lineIndex is inside, starts,
// or ends a fenced code block. It rescans the document from the start on
// every call: classification is a pure function of (lineIndex,
// allLines[0..lineIndex]) and never depends on later lines.
//
// An unterminated fence leaves every following line inside the block.
func codeBlockState(lineIndex int, allLines []string) BlockState {
	return blockState(lineIndex, allLines, isCodeFence)
}

// mathBlockState is the $$-fence analogue of codeBlockState.
func mathBlockState(lineIndex int, allLines []string) BlockState {
	return blockState(lineIndex, allLines, isMathFence)
}

func blockState(lineIndex int, allLines []string, isFence func(string) bool) BlockState {
	inBlock := false

	for i, line := range allLines {
		if i > lineIndex {
			break
		}
		if !isFence(line) {
			continue
		}
		if i == lineIndex {
			// The target line is itself a fence: it starts a block if no
			// block was open, ends one otherwise.
			return BlockState{InBlock: true, IsStart: !inBlock, IsEnd: inBlock}
		}
		inBlock = !inBlock
	}

	return BlockState{InBlock: inBlock}
}
