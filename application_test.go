package picker

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/picker/internal/screentest"
)

func runAsync(app *Application) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- app.Run()
	}()
	return done
}

func waitRun(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		require.FailNow(t, "application did not stop")
		return nil
	}
}

func TestApplicationRunSelects(t *testing.T) {
	screen := screentest.New(30, 8)
	chosen := -1
	list := NewSelectionList().SetItems("alpha", "beta", "gamma")
	list.SetSelectedFunc(func(index int, label string) Command {
		chosen = index
		return BatchCommand{SetTitleCommand(label), QuitCommand{}}
	})
	app := NewApplication().SetScreen(screen).SetRoot(list)

	screen.InjectRune("j")
	screen.InjectKey(tcell.KeyEnter, "", tcell.ModNone)

	require.NoError(t, waitRun(t, runAsync(app)))
	assert.Equal(t, 1, chosen)
	assert.Equal(t, "beta", screen.LastTitle())
	assert.True(t, screen.Stopped())
	// The first frame and the one after moving the cursor.
	assert.Equal(t, 2, screen.Shows())
	assert.Contains(t, screen.Rows()[2], "│› 2. beta")
}

func TestApplicationDrawsRootFullScreen(t *testing.T) {
	screen := screentest.New(12, 3)
	box := NewBox().SetBorders(BordersAll)
	app := NewApplication().SetScreen(screen).SetRoot(box)

	done := runAsync(app)
	app.QueueUpdate(app.Stop)
	require.NoError(t, waitRun(t, done))

	assert.Equal(t, []string{"╭──────────╮", "│          │", "╰──────────╯"}, screen.Rows())
	assert.Equal(t, 1, screen.Clears())
}

func TestApplicationQueueUpdateDraw(t *testing.T) {
	screen := screentest.New(20, 4)
	list := NewSelectionList().SetItems("one", "two")
	list.SetBorders(BordersNone)
	app := NewApplication().SetScreen(screen).SetRoot(list)

	done := runAsync(app)
	app.QueueUpdateDraw(func() {
		list.SetCursor(1)
	})
	assert.Equal(t, []string{"  1. one", "› 2. two", "", ""}, screen.Rows())

	app.QueueUpdate(app.Stop)
	require.NoError(t, waitRun(t, done))
	assert.True(t, screen.Stopped())
}

func TestApplicationQueueRedrawAfterStop(t *testing.T) {
	screen := screentest.New(10, 2)
	app := NewApplication().SetScreen(screen).SetRoot(NewBox())

	done := runAsync(app)
	app.QueueUpdate(app.Stop)
	require.NoError(t, waitRun(t, done))

	// Nobody drains the queue anymore, so filling it must not block.
	returned := make(chan struct{})
	go func() {
		for range updatesQueueSize + 1 {
			app.queueRedraw()
		}
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "queueRedraw blocked")
	}
	assert.Len(t, app.updates, updatesQueueSize)

	update := <-app.updates
	assert.Nil(t, update.done)
	update.f()
}

func TestApplicationIgnoresKeysWithoutFocus(t *testing.T) {
	screen := screentest.New(20, 4)
	cancels := 0
	list := NewSelectionList().SetItems("one")
	list.SetCancelledFunc(func() Command {
		cancels++
		return nil
	})
	app := NewApplication().SetScreen(screen).SetRoot(list)
	app.SetFocus(nil)
	assert.False(t, list.HasFocus())

	done := runAsync(app)
	screen.InjectKey(tcell.KeyEscape, "", tcell.ModNone)
	app.QueueUpdate(app.Stop)
	require.NoError(t, waitRun(t, done))
	assert.Zero(t, cancels)
}

func TestApplicationEventError(t *testing.T) {
	screen := screentest.New(10, 2)
	app := NewApplication().SetScreen(screen).SetRoot(NewBox())

	screen.EventQ() <- tcell.NewEventError(errors.New("terminal went away"))

	err := waitRun(t, runAsync(app))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal went away")
	assert.True(t, screen.Stopped())
}

func TestApplicationExecuteCommand(t *testing.T) {
	screen := screentest.New(10, 2)
	app := NewApplication().SetScreen(screen)

	assert.False(t, app.executeCommand(nil))
	assert.True(t, app.executeCommand(RedrawCommand{}))
	assert.False(t, app.executeCommand(SetTitleCommand("title")))
	assert.Equal(t, "title", screen.LastTitle())

	assert.True(t, app.executeCommand(BatchCommand{SetTitleCommand("again"), RedrawCommand{}}))
	assert.Equal(t, "again", screen.LastTitle())
	assert.False(t, app.executeCommand(BatchCommand{nil}))

	assert.False(t, app.executeCommand(QuitCommand{}))
	assert.True(t, screen.Stopped())

	// Commands after stopping have no screen to act on.
	assert.False(t, app.executeCommand(SetTitleCommand("late")))
	assert.Equal(t, "again", screen.LastTitle())
}

func TestApplicationSetFocus(t *testing.T) {
	var events []string
	first := NewBox()
	first.SetFocusFunc(func() { events = append(events, "focus first") })
	first.SetBlurFunc(func() { events = append(events, "blur first") })
	second := NewBox()
	second.SetFocusFunc(func() { events = append(events, "focus second") })

	app := NewApplication().SetRoot(first)
	assert.Equal(t, first, app.GetFocus())

	app.SetFocus(second)
	assert.Equal(t, second, app.GetFocus())
	assert.False(t, first.HasFocus())
	assert.True(t, second.HasFocus())
	assert.Equal(t, []string{"focus first", "blur first", "focus second"}, events)
}

func TestAppendCommand(t *testing.T) {
	assert.Nil(t, AppendCommand(nil, nil))
	assert.Equal(t, RedrawCommand{}, AppendCommand(nil, RedrawCommand{}))
	assert.Equal(t, RedrawCommand{}, AppendCommand(RedrawCommand{}, nil))
	assert.Equal(t,
		BatchCommand{RedrawCommand{}, SetTitleCommand("a"), QuitCommand{}},
		AppendCommand(BatchCommand{RedrawCommand{}, SetTitleCommand("a")}, QuitCommand{}),
	)
	assert.Equal(t,
		BatchCommand{QuitCommand{}, RedrawCommand{}, RedrawCommand{}},
		AppendCommand(QuitCommand{}, BatchCommand{RedrawCommand{}, RedrawCommand{}}),
	)
}
