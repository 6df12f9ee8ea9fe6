package koch

// Pacer hands out a command list in fixed-size batches, so a drawing can be
// shown progressively. A batch size of zero or less hands out everything at once.
type Pacer struct {
	cmds  []Command
	batch int
	next  int
}

func NewPacer(cmds []Command, batch int) *Pacer {
	if batch <= 0 {
		batch = max(len(cmds), 1)
	}
	return &Pacer{cmds: cmds, batch: batch}
}

// Next returns the next batch, or nil once every command was handed out.
func (p *Pacer) Next() []Command {
	if p.Done() {
		return nil
	}
	end := min(p.next+p.batch, len(p.cmds))
	b := p.cmds[p.next:end]
	p.next = end
	return b
}

func (p *Pacer) Done() bool {
	return p.next >= len(p.cmds)
}

// Progress reports how many commands were handed out so far.
func (p *Pacer) Progress() (done, total int) {
	return p.next, len(p.cmds)
}

// Reset starts over from the first command.
func (p *Pacer) Reset() {
	p.next = 0
}
