package rpc

// applyChanges folds a sequence of content changes into the mirrored
// text. Out-of-range positions clamp rather than error: the host's edit
// stream wins over a momentarily inconsistent mirror.
func applyChanges(text string, changes []ContentChange) string {
	if len(changes) == 0 {
		return text
	}
	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
			continue
		}
		start := offsetForPosition(text, change.Range.Start)
		end := offsetForPosition(text, change.Range.End)
		if start < 0 {
			start = 0
		}
		if end < start {
			end = start
		}
		if start > len(text) {
			start = len(text)
		}
		if end > len(text) {
			end = len(text)
		}
		text = text[:start] + change.Text + text[end:]
	}
	return text
}

// offsetForPosition maps a line/byte-column position to a byte offset.
// Positions past the end of a line or the text clamp to the nearest
// valid offset.
func offsetForPosition(text string, pos Position) int {
	if pos.Line < 0 || pos.Col < 0 {
		return 0
	}
	line := 0
	i := 0
	for i < len(text) && line < pos.Line {
		if text[i] == '\n' {
			line++
		}
		i++
	}
	if line < pos.Line {
		return len(text)
	}
	col := 0
	for i < len(text) && col < pos.Col {
		if text[i] == '\n' {
			break
		}
		i++
		col++
	}
	return i
}
