package main

import "github.com/pterm/pterm"

// progressBar shows the progress of a batch run on the console.
type progressBar struct {
	title string
	bar   *pterm.ProgressbarPrinter
}

func (p *progressBar) Start(total int) {
	if total == 0 {
		return
	}
	bar, err := pterm.DefaultProgressbar.WithTotal(total).WithTitle(p.title).Start()
	if err != nil {
		tracer().Errorf("cannot display progress: %v", err)
		return
	}
	p.bar = bar
}

func (p *progressBar) Increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *progressBar) Stop() {
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
}
