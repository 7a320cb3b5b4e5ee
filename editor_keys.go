package textedit

// key handles a key press on an active editor and reports content changes.
func (e *Editor) key(k Key, mods Modifier) bool {
	shift := mods.Has(ModShift)
	ctrl := mods.Has(ModCtrl) || mods.Has(ModSuper)
	text := e.buf.Runes()
	cur := e.sel.Cursor()

	switch k {
	case KeyLeft:
		if ctrl {
			e.sel.MoveTo(wordLeft(text, cur), shift)
		} else {
			e.sel.MoveTo(cur-1, shift)
		}

	case KeyRight:
		if ctrl {
			e.sel.MoveTo(wordRight(text, cur), shift)
		} else {
			e.sel.MoveTo(cur+1, shift)
		}

	case KeyUp, KeyDown, KeyPageUp, KeyPageDown:
		if e.mode == ModeSingleLine {
			return false
		}
		step := 1
		if k == KeyPageUp || k == KeyPageDown {
			step = e.visibleLineCount()
		}
		if k == KeyUp || k == KeyPageUp {
			step = -step
		}
		e.sel.MoveTo(e.verticalTarget(step), shift)

	case KeyHome:
		if ctrl || e.mode == ModeSingleLine {
			e.sel.MoveTo(0, shift)
		} else {
			lines := e.visualLines()
			e.sel.MoveTo(lines[LineIndex(lines, cur)].Start, shift)
		}

	case KeyEnd:
		if ctrl || e.mode == ModeSingleLine {
			e.sel.MoveTo(len(text), shift)
		} else {
			lines := e.visualLines()
			e.sel.MoveTo(lineEnd(lines[LineIndex(lines, cur)]), shift)
		}

	case KeyBackspace:
		if e.sel.DeleteSelection() {
			e.invalidate()
			return true
		}
		if cur == 0 {
			return false
		}
		start := cur - 1
		if ctrl {
			start = wordLeft(text, cur)
		}
		return e.deleteRange(start, cur)

	case KeyDelete:
		if e.sel.DeleteSelection() {
			e.invalidate()
			return true
		}
		if cur >= len(text) {
			return false
		}
		end := cur + 1
		if ctrl {
			end = wordRight(text, cur)
		}
		return e.deleteRange(cur, end)

	case KeyEnter:
		if e.mode == ModeSingleLine {
			e.commit()
			return false
		}
		changed, _ := e.insert("\n")
		return changed

	case KeyEscape:
		e.deactivate()

	case KeyA, KeyC, KeyX, KeyV:
		if !ctrl {
			return false
		}
		return e.command(chordCommand(k))
	}
	return false
}

func chordCommand(k Key) Command {
	switch k {
	case KeyA:
		return CommandSelectAll
	case KeyC:
		return CommandCopy
	case KeyX:
		return CommandCut
	case KeyV:
		return CommandPaste
	}
	return CommandNone
}

// command runs a clipboard or selection command and reports content changes.
// Copy and cut without a selection do nothing.
func (e *Editor) command(c Command) bool {
	switch c {
	case CommandSelectAll:
		e.sel.SelectAll()
	case CommandCopy, CommandCut:
		start, end, ok := e.sel.SelectedRange()
		if !ok {
			return false
		}
		e.clipboard.SetText(e.buf.Slice(start, end))
		if c == CommandCut {
			e.sel.DeleteSelection()
			e.invalidate()
			return true
		}
	case CommandPaste:
		text, ok := e.clipboard.GetText()
		if !ok || text == "" {
			return false
		}
		changed, _ := e.insert(text)
		return changed
	}
	return false
}

// verticalTarget returns the offset step visual lines above (negative) or
// below the cursor whose x position is closest to the cursor's. Moving past
// the first or last line goes to the start or end of the buffer.
func (e *Editor) verticalTarget(step int) int {
	text := e.buf.Runes()
	lines := e.visualLines()
	cur := e.sel.Cursor()
	li := LineIndex(lines, cur)

	target := li + step
	switch {
	case target < 0:
		return 0
	case target >= len(lines):
		return len(text)
	}

	col := e.widths.span(text, lines[li].Start, cur)
	line := lines[target]
	return e.offsetInLine(text, line, line.Start, col)
}
