package styled

import "github.com/iw2rmb/richtext/internal/bitseq"

type textSnapshot struct {
	content []byte
	styles  map[Style]*bitseq.Seq
}

type historyState struct {
	undo []textSnapshot
	redo []textSnapshot
}

func (t *Text) snapshot() textSnapshot {
	return textSnapshot{
		content: t.Bytes(),
		styles:  cloneStyles(t.styles),
	}
}

func (t *Text) restore(s textSnapshot) {
	t.content = s.content
	t.styles = s.styles
	t.version++
	t.layout++
}

func (t *Text) recordUndo() {
	limit := t.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	t.hist.undo = append(t.hist.undo, t.snapshot())
	if len(t.hist.undo) > limit {
		t.hist.undo = t.hist.undo[len(t.hist.undo)-limit:]
	}
	t.hist.redo = nil
}

func (t *Text) CanUndo() bool { return len(t.hist.undo) > 0 }

func (t *Text) CanRedo() bool { return len(t.hist.redo) > 0 }

// Undo restores the content and styling in effect before the last mutation.
func (t *Text) Undo() bool {
	if len(t.hist.undo) == 0 {
		return false
	}
	prev := t.hist.undo[len(t.hist.undo)-1]
	t.hist.undo = t.hist.undo[:len(t.hist.undo)-1]
	t.hist.redo = append(t.hist.redo, t.snapshot())
	t.restore(prev)
	return true
}

func (t *Text) Redo() bool {
	if len(t.hist.redo) == 0 {
		return false
	}
	next := t.hist.redo[len(t.hist.redo)-1]
	t.hist.redo = t.hist.redo[:len(t.hist.redo)-1]
	t.hist.undo = append(t.hist.undo, t.snapshot())
	t.restore(next)
	return true
}
