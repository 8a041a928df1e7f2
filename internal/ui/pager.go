package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/noborus/ov/oviewer"
)

// Pager shows long text outside of the main view
type Pager interface {
	Show(content string) error
}

// Terminal is the part of tea.Program the pager needs to hand the screen over
type Terminal interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// OvPager shows content with the ov pager
type OvPager struct {
	term Terminal
}

// NewOvPager creates a pager that suspends term while ov runs
func NewOvPager(term Terminal) *OvPager {
	return &OvPager{term: term}
}

// Show runs ov on content and blocks until it exits
func (p *OvPager) Show(content string) error {
	if p.term == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.term.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.term.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Do not write on exit to avoid messing with our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
