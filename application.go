package picker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"
)

const (
	// The size of the queued updates channel.
	updatesQueueSize = 100
	// The minimum time between two consecutive redraws.
	redrawPause = 50 * time.Millisecond
)

// queuedUpdate represented the execution of f queued by
// Application.QueueUpdate(). If "done" is not nil, it receives exactly one
// element after f has executed.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application owns the terminal screen, draws the root primitive over the
// whole screen, and passes key events to it.
//
// The following displays a selection list until an option is chosen:
//
//	list := picker.NewSelectionList().SetItems("yes", "no")
//	list.SetSelectedFunc(func(int, string) picker.Command {
//	    return picker.QuitCommand{}
//	})
//	if err := picker.NewApplication().SetRoot(list).Run(); err != nil {
//	    return err
//	}
type Application struct {
	sync.RWMutex

	// The application's screen. Apart from Run(), this variable should never
	// be set directly.
	screen tcell.Screen

	// The primitive which currently has the keyboard focus.
	focus Primitive

	// The root primitive to be seen on the screen.
	root Primitive

	events chan tcell.Event

	// Functions queued from goroutines, used to serialize updates to primitives.
	updates chan queuedUpdate

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool
}

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{
		updates: make(chan queuedUpdate, updatesQueueSize),
	}
}

// SetScreen sets the application's screen. The screen must already be
// initialized. It has no effect once a screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// Run starts the application and thus the event loop. This function returns
// when [Application.Stop] was called or a [QuitCommand] was executed.
func (a *Application) Run() error {
	var (
		appErr      error
		lastRedraw  time.Time   // The time the screen was last redrawn.
		redrawTimer *time.Timer // A timer to schedule the next redraw.
	)
	a.Lock()

	// Make a screen if there is none yet.
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return fmt.Errorf("create screen: %w", err)
		}
		if err = screen.Init(); err != nil {
			a.Unlock()
			return fmt.Errorf("init screen: %w", err)
		}
		a.screen = screen
	}
	screen := a.screen
	a.events = screen.EventQ()
	a.Unlock()

	// We catch panics to clean up because they mess up the terminal.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	// Draw the screen for the first time.
	a.draw()

EventLoop:
	for {
		select {
		case event := <-a.events:
			if event == nil {
				break EventLoop
			}

			switch event := event.(type) {
			case *tcell.EventKey:
				a.RLock()
				root := a.root
				a.RUnlock()

				if root != nil && root.HasFocus() {
					cmd := root.InputHandler(event)
					if a.executeCommand(cmd) {
						a.draw()
					}
				}
			case *tcell.EventResize:
				a.Lock()
				// Resize events can imply terminal state changes even when size
				// reports unchanged, so force one redraw pass.
				a.forceRedraw = true
				a.Unlock()
				if time.Since(lastRedraw) < redrawPause {
					if redrawTimer != nil {
						redrawTimer.Stop()
					}
					redrawTimer = time.AfterFunc(redrawPause, a.queueRedraw)
				}
				lastRedraw = time.Now()
				a.draw()
			case *tcell.EventError:
				appErr = event
				a.Stop()
			}

		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		}

		a.RLock()
		stopped := a.screen == nil
		a.RUnlock()
		if stopped {
			break
		}
	}

	if redrawTimer != nil {
		redrawTimer.Stop()
	}
	return appErr
}

// Stop stops the application, causing Run() to return.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	screen := a.screen
	if screen == nil {
		return
	}
	screen.Fini()
	a.screen = nil
}

// Draw refreshes the screen during the next update cycle. Never call it from
// the event loop itself, for example from an input handler, as it waits for
// the loop.
func (a *Application) Draw() *Application {
	a.QueueUpdate(func() {
		a.draw()
	})
	return a
}

// draw actually does what Draw() promises to do.
func (a *Application) draw() *Application {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.Unlock()

	// Maybe we're not ready yet or not anymore.
	if screen == nil || root == nil {
		return a
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)

	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()

	a.Lock()
	a.forceRedraw = false
	a.Unlock()

	return a
}

// SetRoot sets the root primitive for this application and focuses it.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus sets the focus to a new primitive. Blur() is called on the
// previously focused primitive and Focus() on the new one.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}

	return a
}

// GetFocus returns the primitive which has the current focus, or nil.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop and returns after f has executed. It
// is used to access primitives from other goroutines.
func (a *Application) QueueUpdate(f func()) *Application {
	ch := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: ch}
	<-ch
	return a
}

// QueueUpdateDraw works like QueueUpdate() except it refreshes the screen
// immediately after executing f.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	a.QueueUpdate(func() {
		f()
		a.draw()
	})
	return a
}

// queueRedraw asks the event loop for a redraw without waiting for it. The
// request is dropped when the queue is full or nothing reads it anymore.
func (a *Application) queueRedraw() {
	select {
	case a.updates <- queuedUpdate{f: func() { a.draw() }}:
	default:
	}
}

// executeCommand runs cmd and reports whether the screen needs a redraw.
func (a *Application) executeCommand(cmd Command) bool {
	if cmd == nil {
		return false
	}

	a.RLock()
	screen := a.screen
	a.RUnlock()

	switch c := cmd.(type) {
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	case SetTitleCommand:
		if screen != nil {
			screen.SetTitle(string(c))
		}
		return false
	}

	return false
}
